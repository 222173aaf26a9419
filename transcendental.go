package algocomplex

import (
	"math"

	m "github.com/cwbudde/algo-complex/internal/math"
)

// Exp returns e**z.
func (z Complex) Exp() Complex {
	return Polar(math.Exp(z.re), z.im)
}

// Log returns the principal natural logarithm log|z| + Arg(z)·i.
// The imaginary part lies in (-π, π]; Log of 0 is -Inf + 0i.
func (z Complex) Log() Complex {
	return Complex{re: math.Log(z.Abs()), im: z.Arg()}
}

// Log10 returns the principal base-10 logarithm, Log(z) / ln 10.
func (z Complex) Log10() Complex {
	return z.Log().DivReal(m.Ln10)
}

// Pow returns the principal value of z**n, computed as exp(n·Log z).
//
// Because Log is restricted to the principal branch, non-integer powers
// lose branch information: (z**2)**0.5 is z only when Arg z lies in
// (-π/2, π/2], otherwise it is -z. Pow(0, n) is 0 for n > 0; for n ≤ 0 the
// result carries Inf or NaN components.
func (z Complex) Pow(n float64) Complex {
	return z.Log().MulReal(n).Exp()
}

// PowComplex returns the principal value of z**w, computed as exp(w·Log z).
func (z Complex) PowComplex(w Complex) Complex {
	return w.Mul(z.Log()).Exp()
}

// Sqrt returns the principal square root of z, the root with Re ≥ 0.
// Roots of negative reals are returned on the positive imaginary axis.
// The result is finite for every finite z, including components near
// MaxFloat64.
func (z Complex) Sqrt() Complex {
	if z.re == 0 {
		t := math.Sqrt(math.Abs(z.im) / 2)
		return Complex{re: t, im: m.CopySign(t, z.im)}
	}

	var t float64
	if m.MaxAbs(z.re, z.im) > math.MaxFloat64/8 {
		// 2(|z| + |re|) can overflow here; take the root of z/16 and scale by 4.
		s := Complex{re: z.re / 16, im: z.im / 16}
		t = 4 * math.Sqrt(2*(s.Abs()+math.Abs(s.re)))
	} else {
		t = math.Sqrt(2 * (z.Abs() + math.Abs(z.re)))
	}

	u := t / 2

	if z.re > 0 {
		return Complex{re: u, im: z.im / t}
	}

	return Complex{re: math.Abs(z.im) / t, im: m.CopySign(u, z.im)}
}
