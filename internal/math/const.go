package math

import "math"

// Mathematical constants for complex computations.

// Ln10 is the natural logarithm of 10 with full float64 precision.
const Ln10 = math.Ln10
