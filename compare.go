package algocomplex

// Equal reports whether z and w are component-wise equal under IEEE-754
// rules: no tolerance is applied, NaN is unequal to everything and
// 0 == -0. It agrees with z == w.
func (z Complex) Equal(w Complex) bool {
	return z.re == w.re && z.im == w.im
}

// NotEqual reports whether z and w differ in either component.
func (z Complex) NotEqual(w Complex) bool {
	return z.re != w.re || z.im != w.im
}

// EqualReal reports whether z is the real number r, that is Re z == r and
// Im z == 0 exactly.
func (z Complex) EqualReal(r float64) bool {
	return z.re == r && z.im == 0
}

// NotEqualReal is the negation of EqualReal.
func (z Complex) NotEqualReal(r float64) bool {
	return z.re != r || z.im != 0
}
