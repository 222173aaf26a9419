// Package kernels implements element-wise batch operations over complex128
// slices. Every kernel computes exactly the same rounding sequence as the
// scalar operation on algocomplex.Complex, so batch and scalar results are
// bit-identical regardless of strategy.
package kernels

import (
	"github.com/cwbudde/algo-complex/internal/cpu"
	"github.com/cwbudde/algo-complex/internal/cxtypes"
)

// BinaryKernel computes dst[i] = op(a[i], b[i]).
// The caller guarantees len(dst) == len(a) == len(b).
type BinaryKernel func(dst, a, b []complex128)

// ScaleKernel computes dst[i] = src[i] * r.
// The caller guarantees len(dst) == len(src).
type ScaleKernel func(dst, src []complex128, r float64)

// Kernels groups the kernels of one strategy.
type Kernels struct {
	Strategy cxtypes.KernelStrategy
	Add      BinaryKernel
	Mul      BinaryKernel
	Scale    ScaleKernel
}

var (
	genericKernels = Kernels{
		Strategy: cxtypes.KernelGeneric,
		Add:      addGeneric,
		Mul:      mulGeneric,
		Scale:    scaleGeneric,
	}

	unrolledKernels = Kernels{
		Strategy: cxtypes.KernelUnrolled,
		Add:      addUnrolled,
		Mul:      mulUnrolled,
		Scale:    scaleUnrolled,
	}
)

// Select returns the kernels for strategy. KernelAuto resolves to the
// unrolled kernels when the CPU has wide vector units and to the generic
// kernels otherwise.
func Select(strategy cxtypes.KernelStrategy, features cpu.Features) Kernels {
	switch strategy {
	case cxtypes.KernelGeneric:
		return genericKernels
	case cxtypes.KernelUnrolled:
		return unrolledKernels
	default:
		if features.HasWideVectors() {
			return unrolledKernels
		}

		return genericKernels
	}
}

// mul is the scalar product shared by all strategies.
// Explicit conversions keep the compiler from fusing into FMA.
func mul(x, y complex128) complex128 {
	a, b := real(x), imag(x)
	c, d := real(y), imag(y)

	return complex(float64(a*c)-float64(b*d), float64(a*d)+float64(b*c))
}

func scale(x complex128, r float64) complex128 {
	return complex(real(x)*r, imag(x)*r)
}
