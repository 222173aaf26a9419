package algocomplex

import (
	"math"
	"math/rand"
	"testing"
)

// Shared test helper functions used across multiple test files

// closeTo reports whether got is within tol of want, relative to
// max(1, |want|). NaN components must match NaN.
func closeTo(got, want Complex, tol float64) bool {
	if got.IsNaN() || want.IsNaN() {
		return math.IsNaN(got.re) == math.IsNaN(want.re) && math.IsNaN(got.im) == math.IsNaN(want.im)
	}

	scale := math.Max(1, want.Abs())

	return got.Sub(want).Abs() <= tol*scale
}

func assertApproxComplex(t *testing.T, got, want Complex, tol float64, format string, args ...any) {
	t.Helper()

	if !closeTo(got, want, tol) {
		t.Fatalf(format+": got %v want %v (diff=%v)", append(args, got, want, got.Sub(want).Abs())...)
	}
}

func assertExactComplex(t *testing.T, got, want Complex, format string, args ...any) {
	t.Helper()

	if !sameBits(got, want) {
		t.Fatalf(format+": got %v want %v", append(args, got, want)...)
	}
}

// sameBits compares the raw IEEE-754 encodings, so NaN matches NaN and
// 0 does not match -0.
func sameBits(x, y Complex) bool {
	return math.Float64bits(x.re) == math.Float64bits(y.re) &&
		math.Float64bits(x.im) == math.Float64bits(y.im)
}

// randomComplex returns n values with components uniform in (-scale, scale).
func randomComplex(n int, scale float64, seed int64) []Complex {
	rng := rand.New(rand.NewSource(seed))

	out := make([]Complex, n)
	for i := range out {
		out[i] = New((rng.Float64()*2-1)*scale, (rng.Float64()*2-1)*scale)
	}

	return out
}
