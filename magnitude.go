package algocomplex

import (
	"math"

	m "github.com/cwbudde/algo-complex/internal/math"
)

// Abs returns the modulus |z|.
//
// The components are scaled by max(|Re z|, |Im z|) before squaring, so the
// result is exact wherever the true modulus is representable: Abs of
// (MaxFloat64/2, MaxFloat64/2) is finite and Abs(3+4i) is exactly 5.
func (z Complex) Abs() float64 {
	return m.ScaledHypot(z.re, z.im)
}

// Arg returns the argument of z in (-π, π].
func (z Complex) Arg() float64 {
	return math.Atan2(z.im, z.re)
}

// Conj returns the complex conjugate Re z - Im z·i.
func (z Complex) Conj() Complex {
	return Complex{re: z.re, im: -z.im}
}

// Norm returns the squared modulus |z|².
func (z Complex) Norm() float64 {
	a := z.Abs()
	return a * a
}
