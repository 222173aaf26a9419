package math

import (
	"math"
	"testing"
)

func TestScaledHypot(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		a, b   float64
		expect float64
	}{
		// Edge cases
		{"zero", 0, 0, 0},
		{"negative zero", math.Copysign(0, -1), 0, 0},
		{"real only", -7, 0, 7},
		{"imag only", 0, -2.5, 2.5},

		// Pythagorean triples are exact
		{"3-4-5", 3, 4, 5},
		{"5-12-13", -5, 12, 13},
		{"8-15-17", 8, -15, 17},

		// Extreme magnitudes a naive sqrt(a*a+b*b) gets wrong
		{"near max", math.MaxFloat64 / 2, math.MaxFloat64 / 2, math.MaxFloat64 / 2 * math.Sqrt2},
		{"subnormal", math.Ldexp(3, -1070), math.Ldexp(4, -1070), math.Ldexp(5, -1070)},

		// Infinities dominate NaN
		{"+inf", math.Inf(1), 1, math.Inf(1)},
		{"-inf with nan", math.Inf(-1), math.NaN(), math.Inf(1)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ScaledHypot(tt.a, tt.b)
			if !closeRel(got, tt.expect, 1e-15) {
				t.Errorf("ScaledHypot(%g, %g) = %g, want %g", tt.a, tt.b, got, tt.expect)
			}
		})
	}
}

func TestScaledHypotNaN(t *testing.T) {
	t.Parallel()

	if got := ScaledHypot(math.NaN(), 1); !math.IsNaN(got) {
		t.Errorf("ScaledHypot(NaN, 1) = %g, want NaN", got)
	}
}

func TestCopySign(t *testing.T) {
	t.Parallel()

	tests := []struct {
		x, s, expect float64
	}{
		{2, 1, 2},
		{2, -1, -2},
		{-2, 1, 2},
		{2, 0, 2},
		{2, math.Copysign(0, -1), 2},
	}

	for _, tt := range tests {
		if got := CopySign(tt.x, tt.s); got != tt.expect {
			t.Errorf("CopySign(%g, %g) = %g, want %g", tt.x, tt.s, got, tt.expect)
		}
	}
}

func closeRel(got, want, tol float64) bool {
	if got == want {
		return true
	}

	return math.Abs(got-want) <= tol*math.Abs(want)
}
