package algocomplex

import (
	"math"
	"testing"
)

func TestEqual(t *testing.T) {
	t.Parallel()

	nan := math.NaN()
	negZero := math.Copysign(0, -1)

	tests := []struct {
		name   string
		z, w   Complex
		expect bool
	}{
		{"same", New(1, 2), New(1, 2), true},
		{"real differs", New(1, 2), New(1.0000000000000002, 2), false},
		{"imag differs", New(1, 2), New(1, -2), false},
		{"signed zeros", New(0, negZero), New(negZero, 0), true},
		{"nan never equal", New(nan, 0), New(nan, 0), false},
		{"infinities", New(math.Inf(1), 0), New(math.Inf(1), 0), true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.z.Equal(tt.w); got != tt.expect {
				t.Errorf("%v.Equal(%v) = %v, want %v", tt.z, tt.w, got, tt.expect)
			}

			if got := tt.z.NotEqual(tt.w); got == tt.expect {
				t.Errorf("%v.NotEqual(%v) = %v, want %v", tt.z, tt.w, got, !tt.expect)
			}

			if got := tt.z == tt.w; got != tt.expect {
				t.Errorf("%v == %v is %v, want %v", tt.z, tt.w, got, tt.expect)
			}

			if got := Equal(tt.z, tt.w); got != tt.expect {
				t.Errorf("Equal(%v, %v) = %v, want %v", tt.z, tt.w, got, tt.expect)
			}
		})
	}
}

func TestEqualReal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		z      Complex
		r      float64
		expect bool
	}{
		{"real value", New(3, 0), 3, true},
		{"negative zero imag", New(3, math.Copysign(0, -1)), 3, true},
		{"nonzero imag", New(3, 1e-300), 3, false},
		{"different real", New(3, 0), 3.5, false},
		{"nan", New(math.NaN(), 0), math.NaN(), false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.z.EqualReal(tt.r); got != tt.expect {
				t.Errorf("%v.EqualReal(%v) = %v, want %v", tt.z, tt.r, got, tt.expect)
			}

			if got := tt.z.NotEqualReal(tt.r); got == tt.expect {
				t.Errorf("%v.NotEqualReal(%v) = %v, want %v", tt.z, tt.r, got, !tt.expect)
			}

			if got := Equal(tt.z, tt.r); got != tt.expect {
				t.Errorf("Equal(%v, %v) = %v, want %v", tt.z, tt.r, got, tt.expect)
			}

			if got := NotEqual(tt.z, tt.r); got == tt.expect {
				t.Errorf("NotEqual(%v, %v) = %v, want %v", tt.z, tt.r, got, !tt.expect)
			}
		})
	}
}
