package algocomplex

import "math"

// Sin returns the sine of z.
func (z Complex) Sin() Complex {
	return Complex{
		re: math.Sin(z.re) * math.Cosh(z.im),
		im: math.Cos(z.re) * math.Sinh(z.im),
	}
}

// Cos returns the cosine of z.
func (z Complex) Cos() Complex {
	return Complex{
		re: math.Cos(z.re) * math.Cosh(z.im),
		im: -math.Sin(z.re) * math.Sinh(z.im),
	}
}

// Tan returns Sin(z) / Cos(z).
//
// Both factors grow like e**|Im z|/2, so once |Im z| exceeds about 710 they
// overflow before the division and Tan returns NaN components even though
// the true value tends to ±i.
func (z Complex) Tan() Complex {
	return z.Sin().Div(z.Cos())
}

// Sinh returns the hyperbolic sine of z.
func (z Complex) Sinh() Complex {
	return Complex{
		re: math.Sinh(z.re) * math.Cos(z.im),
		im: math.Cosh(z.re) * math.Sin(z.im),
	}
}

// Cosh returns the hyperbolic cosine of z.
func (z Complex) Cosh() Complex {
	return Complex{
		re: math.Cosh(z.re) * math.Cos(z.im),
		im: math.Sinh(z.re) * math.Sin(z.im),
	}
}

// Tanh returns Sinh(z) / Cosh(z).
//
// As with Tan, |Re z| beyond about 710 overflows both factors and the result
// has NaN components even though the true value tends to ±1.
func (z Complex) Tanh() Complex {
	return z.Sinh().Div(z.Cosh())
}
