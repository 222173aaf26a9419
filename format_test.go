package algocomplex

import (
	"fmt"
	"math"
	"testing"
)

func TestString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		z      Complex
		expect string
	}{
		{"both parts", New(3, 4), "3 + 4i"},
		{"negative imaginary keeps plus", New(3, -4), "3 + -4i"},
		{"real only", New(3, 0), "3"},
		{"negative zero imaginary", New(3, math.Copysign(0, -1)), "3"},
		{"zero", Zero(), "0"},
		{"negative zero", New(math.Copysign(0, -1), 0), "0"},
		{"pure imaginary", New(0, 1), "0 + 1i"},
		{"fractions", New(0.1, -2.5), "0.1 + -2.5i"},
		{"shortest digits", New(1.0/3, 0), "0.3333333333333333"},
		{"large fixed", New(1e20, 0), "100000000000000000000"},
		{"exponent threshold", New(1e21, 0), "1e+21"},
		{"large exponent", New(-1.5e300, 2), "-1.5e+300 + 2i"},
		{"small fixed", New(1.5e-6, 0), "0.0000015"},
		{"small exponent", New(1e-7, 0), "1e-7"},
		{"denormal", New(5e-324, 0), "5e-324"},
		{"nan", New(math.NaN(), math.NaN()), "NaN + NaNi"},
		{"infinities", New(math.Inf(1), math.Inf(-1)), "Infinity + -Infinityi"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.z.String(); got != tt.expect {
				t.Errorf("String() = %q, want %q", got, tt.expect)
			}
		})
	}
}

func TestStringViaFmt(t *testing.T) {
	t.Parallel()

	if got := fmt.Sprint(New(1, 2)); got != "1 + 2i" {
		t.Errorf("fmt.Sprint = %q", got)
	}

	if got := fmt.Sprintf("%v|%s", New(-1, 0), New(0, -1)); got != "-1|0 + -1i" {
		t.Errorf("fmt.Sprintf = %q", got)
	}
}
