package algocomplex

import m "github.com/cwbudde/algo-complex/internal/math"

// Products are wrapped in explicit float64 conversions, which forbids FMA
// fusion: a·b == b·a and z/z == 1 hold bit-exactly on every architecture.

// Pos returns z unchanged (unary plus).
func (z Complex) Pos() Complex {
	return z
}

// Neg returns -z.
func (z Complex) Neg() Complex {
	return Complex{re: -z.re, im: -z.im}
}

// Add returns z + w.
func (z Complex) Add(w Complex) Complex {
	return Complex{re: z.re + w.re, im: z.im + w.im}
}

// AddReal returns z + r.
func (z Complex) AddReal(r float64) Complex {
	return Complex{re: z.re + r, im: z.im}
}

// Sub returns z - w.
func (z Complex) Sub(w Complex) Complex {
	return Complex{re: z.re - w.re, im: z.im - w.im}
}

// SubReal returns z - r. Only the real component changes.
func (z Complex) SubReal(r float64) Complex {
	return Complex{re: z.re - r, im: z.im}
}

// Mul returns z·w = (ac - bd) + (ad + bc)i.
func (z Complex) Mul(w Complex) Complex {
	a, b := z.re, z.im
	c, d := w.re, w.im

	return Complex{
		re: float64(a*c) - float64(b*d),
		im: float64(a*d) + float64(b*c),
	}
}

// MulReal returns z·r.
func (z Complex) MulReal(r float64) Complex {
	return Complex{re: z.re * r, im: z.im * r}
}

// Div returns z / w.
//
// All four components are first divided by s = max(|Re w|, |Im w|), so the
// denominator c² + d² lies in [1, 2] and cannot overflow or underflow for
// divisors of any finite magnitude. Dividing by the zero value returns
// (Re z / 0, Im z / 0) under IEEE-754 rules, e.g. 1/0 = +Inf + NaN·i.
func (z Complex) Div(w Complex) Complex {
	s := m.MaxAbs(w.re, w.im)
	if s == 0 {
		return Complex{re: z.re / s, im: z.im / s}
	}

	a, b := z.re/s, z.im/s
	c, d := w.re/s, w.im/s

	den := float64(c*c) + float64(d*d)

	return Complex{
		re: (float64(a*c) + float64(b*d)) / den,
		im: (float64(b*c) - float64(a*d)) / den,
	}
}

// DivReal returns z / r. A zero divisor yields ±Inf or NaN components.
func (z Complex) DivReal(r float64) Complex {
	return Complex{re: z.re / r, im: z.im / r}
}
