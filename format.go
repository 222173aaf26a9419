package algocomplex

import (
	"math"
	"strconv"
	"strings"
)

// String renders z as "<re>" when Im z is exactly zero and as
// "<re> + <im>i" otherwise. The sign of the imaginary part is not folded
// into the operator, so 3-4i renders as "3 + -4i".
//
// Components use shortest round-trip digits in fixed notation for
// magnitudes in [1e-6, 1e21) and exponent notation otherwise ("1e-7",
// "1.5e+21"). Special values render as "NaN", "Infinity" and "-Infinity",
// and both zeros as "0".
func (z Complex) String() string {
	if z.im == 0 {
		return formatReal(z.re)
	}

	var sb strings.Builder

	sb.WriteString(formatReal(z.re))
	sb.WriteString(" + ")
	sb.WriteString(formatReal(z.im))
	sb.WriteByte('i')

	return sb.String()
}

func formatReal(x float64) string {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "Infinity"
	case math.IsInf(x, -1):
		return "-Infinity"
	case x == 0:
		return "0"
	}

	if ax := math.Abs(x); ax >= 1e-6 && ax < 1e21 {
		return strconv.FormatFloat(x, 'f', -1, 64)
	}

	// strconv pads the exponent to two digits ("1e-07").
	s := strconv.FormatFloat(x, 'e', -1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")

	return mant + "e" + sign + digits
}
