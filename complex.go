package algocomplex

import "math"

// Complex is a complex number re + im·i with float64 components.
//
// The zero value is 0. Any pair of float64 values, including NaN and ±Inf,
// is a valid Complex. Complex values are comparable with == and compare
// component-wise under IEEE-754 rules, exactly like Equal.
type Complex struct {
	re, im float64
}

// Zero returns 0 + 0i.
func Zero() Complex {
	return Complex{}
}

// FromReal returns r + 0i.
func FromReal(r float64) Complex {
	return Complex{re: r}
}

// New returns re + im·i.
func New(re, im float64) Complex {
	return Complex{re: re, im: im}
}

// Polar returns the complex number with modulus rho and argument theta,
// that is rho·cos θ + rho·sin θ·i.
func Polar(rho, theta float64) Complex {
	s, c := math.Sincos(theta)

	return Complex{re: rho * c, im: rho * s}
}

// FromComplex128 converts a built-in complex128.
func FromComplex128(c complex128) Complex {
	return Complex{re: real(c), im: imag(c)}
}

// Complex128 converts z to the built-in complex128.
func (z Complex) Complex128() complex128 {
	return complex(z.re, z.im)
}

// Real returns the real component.
func (z Complex) Real() float64 {
	return z.re
}

// Imag returns the imaginary component.
func (z Complex) Imag() float64 {
	return z.im
}

// IsNaN reports whether either component is NaN and neither is infinite.
func (z Complex) IsNaN() bool {
	if math.IsInf(z.re, 0) || math.IsInf(z.im, 0) {
		return false
	}

	return math.IsNaN(z.re) || math.IsNaN(z.im)
}

// IsInf reports whether either component is infinite.
func (z Complex) IsInf() bool {
	return math.IsInf(z.re, 0) || math.IsInf(z.im, 0)
}
