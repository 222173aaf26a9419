package algocomplex

// toComplex lifts an Operand to a Complex.
func toComplex[T Operand](w T) Complex {
	switch v := any(w).(type) {
	case Complex:
		return v
	case float64:
		return FromReal(v)
	default:
		panic("unreachable")
	}
}

// Add returns z + w for either operand kind.
func Add[T Operand](z Complex, w T) Complex {
	if r, ok := any(w).(float64); ok {
		return z.AddReal(r)
	}

	return z.Add(toComplex(w))
}

// Sub returns z - w for either operand kind.
func Sub[T Operand](z Complex, w T) Complex {
	if r, ok := any(w).(float64); ok {
		return z.SubReal(r)
	}

	return z.Sub(toComplex(w))
}

// Mul returns z·w for either operand kind.
func Mul[T Operand](z Complex, w T) Complex {
	if r, ok := any(w).(float64); ok {
		return z.MulReal(r)
	}

	return z.Mul(toComplex(w))
}

// Div returns z / w for either operand kind.
func Div[T Operand](z Complex, w T) Complex {
	if r, ok := any(w).(float64); ok {
		return z.DivReal(r)
	}

	return z.Div(toComplex(w))
}

// Equal reports whether z == w exactly for either operand kind.
func Equal[T Operand](z Complex, w T) bool {
	return z.Equal(toComplex(w))
}

// NotEqual is the negation of Equal.
func NotEqual[T Operand](z Complex, w T) bool {
	return z.NotEqual(toComplex(w))
}

// AddAssign replaces *z with *z + w and returns the new value.
//
// Only the variable z points to is rebound; since Complex is a value type,
// copies of the previous value held elsewhere are unaffected.
func AddAssign[T Operand](z *Complex, w T) Complex {
	*z = Add(*z, w)
	return *z
}

// SubAssign replaces *z with *z - w and returns the new value.
func SubAssign[T Operand](z *Complex, w T) Complex {
	*z = Sub(*z, w)
	return *z
}

// MulAssign replaces *z with *z · w and returns the new value.
func MulAssign[T Operand](z *Complex, w T) Complex {
	*z = Mul(*z, w)
	return *z
}

// DivAssign replaces *z with *z / w and returns the new value.
func DivAssign[T Operand](z *Complex, w T) Complex {
	*z = Div(*z, w)
	return *z
}
