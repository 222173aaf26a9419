package algocomplex

import (
	"context"
	"fmt"
	"runtime"
	"unsafe"

	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-complex/internal/cpu"
	"github.com/cwbudde/algo-complex/internal/kernels"
)

// minChunk is the smallest number of elements handed to one ParallelMap worker.
const minChunk = 1024

// asComplex128 reinterprets s as built-in complex values. Complex and
// complex128 share the same layout: two float64, real first.
func asComplex128(s []Complex) []complex128 {
	if len(s) == 0 {
		return nil
	}

	return unsafe.Slice((*complex128)(unsafe.Pointer(unsafe.SliceData(s))), len(s))
}

func activeKernels() kernels.Kernels {
	return kernels.Select(GetKernelStrategy(), cpu.DetectFeatures())
}

func checkBinary(dst, a, b []Complex) error {
	if dst == nil || a == nil || b == nil {
		return ErrNilSlice
	}

	if len(a) != len(dst) || len(b) != len(dst) {
		return fmt.Errorf("%w: dst=%d a=%d b=%d", ErrLengthMismatch, len(dst), len(a), len(b))
	}

	return nil
}

func checkUnary(dst, src []Complex) error {
	if dst == nil || src == nil {
		return ErrNilSlice
	}

	if len(src) != len(dst) {
		return fmt.Errorf("%w: dst=%d src=%d", ErrLengthMismatch, len(dst), len(src))
	}

	return nil
}

// AddSlices stores a[i] + b[i] into dst[i]. dst may alias a or b.
func AddSlices(dst, a, b []Complex) error {
	if err := checkBinary(dst, a, b); err != nil {
		return err
	}

	activeKernels().Add(asComplex128(dst), asComplex128(a), asComplex128(b))

	return nil
}

// MulSlices stores a[i] · b[i] into dst[i]. dst may alias a or b.
// Each element equals a[i].Mul(b[i]) bit for bit.
func MulSlices(dst, a, b []Complex) error {
	if err := checkBinary(dst, a, b); err != nil {
		return err
	}

	activeKernels().Mul(asComplex128(dst), asComplex128(a), asComplex128(b))

	return nil
}

// ScaleSlice stores src[i] · r into dst[i]. dst may alias src.
func ScaleSlice(dst, src []Complex, r float64) error {
	if err := checkUnary(dst, src); err != nil {
		return err
	}

	activeKernels().Scale(asComplex128(dst), asComplex128(src), r)

	return nil
}

// MapSlice stores fn(src[i]) into dst[i]. dst may alias src.
func MapSlice(dst, src []Complex, fn func(Complex) Complex) error {
	if err := checkUnary(dst, src); err != nil {
		return err
	}

	for i, z := range src {
		dst[i] = fn(z)
	}

	return nil
}

// ParallelMap is MapSlice split across up to workers goroutines.
// workers == 0 uses GOMAXPROCS. The slices are cut into contiguous chunks
// of at least minChunk elements; fn must be safe for concurrent use.
//
// Cancellation is checked between chunks. On cancellation ParallelMap
// returns ctx's error and dst is partially written.
func ParallelMap(ctx context.Context, dst, src []Complex, fn func(Complex) Complex, workers int) error {
	if workers < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkers, workers)
	}

	if err := checkUnary(dst, src); err != nil {
		return err
	}

	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	n := len(src)
	chunk := max((n+workers-1)/workers, minChunk)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for lo := 0; lo < n; lo += chunk {
		lo := lo
		if err := gctx.Err(); err != nil {
			break
		}

		hi := min(lo+chunk, n)

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			for i := lo; i < hi; i++ {
				dst[i] = fn(src[i])
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	return ctx.Err()
}
