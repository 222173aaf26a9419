// Package algocomplex provides a double-precision complex number value type
// with field arithmetic, exact comparison and the elementary transcendental
// functions.
//
// Complex is an immutable value: every operation returns a new value and
// leaves its operands untouched, so values may be shared freely between
// goroutines. Exceptional results follow IEEE-754: dividing by the zero
// complex value or taking the logarithm of zero yields NaN or ±Inf
// components instead of an error.
//
// Multi-valued functions (Log, Pow, PowComplex, Sqrt) return the principal
// value, with the argument in (-π, π].
//
// Example:
//
//	z := algocomplex.New(3, 4)
//	fmt.Println(z.Abs())         // 5
//	fmt.Println(z.Mul(z.Conj())) // 25
//	fmt.Println(z.Sqrt())        // 2 + 1i
package algocomplex
