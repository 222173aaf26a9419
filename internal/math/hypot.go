package math

import "math"

// ScaledHypot returns sqrt(a² + b²) without intermediate overflow or underflow.
// Both operands are divided by m = max(|a|, |b|) before squaring, so the
// squares stay in [0, 1] and the result is m*sqrt((a/m)² + (b/m)²).
// ScaledHypot(0, 0) is 0 and an infinite operand yields +Inf.
func ScaledHypot(a, b float64) float64 {
	m := MaxAbs(a, b)
	if m == 0 {
		return 0
	}

	if math.IsInf(m, 1) {
		return m
	}

	ra := a / m
	rb := b / m

	return m * math.Sqrt(float64(ra*ra)+float64(rb*rb))
}

// MaxAbs returns max(|a|, |b|).
func MaxAbs(a, b float64) float64 {
	return math.Max(math.Abs(a), math.Abs(b))
}

// CopySign returns |x| carrying the sign of s, treating s == 0 (of either
// sign) as positive.
func CopySign(x, s float64) float64 {
	if s < 0 {
		return -math.Abs(x)
	}

	return math.Abs(x)
}
