package script

import (
	"strconv"

	algocomplex "github.com/cwbudde/algo-complex"
)

// Kind tells which field of a Result holds the value.
type Kind uint8

const (
	KindComplex Kind = iota
	KindReal
	KindBool
)

// Result is the outcome of one step.
type Result struct {
	Kind    Kind
	Complex algocomplex.Complex
	Real    float64
	Bool    bool
}

func complexResult(z algocomplex.Complex) Result {
	return Result{Kind: KindComplex, Complex: z}
}

func realResult(x float64) Result {
	return Result{Kind: KindReal, Real: x}
}

func boolResult(b bool) Result {
	return Result{Kind: KindBool, Bool: b}
}

// String renders the value with the same number formatting as
// Complex.String.
func (r Result) String() string {
	switch r.Kind {
	case KindReal:
		return algocomplex.FromReal(r.Real).String()
	case KindBool:
		return strconv.FormatBool(r.Bool)
	default:
		return r.Complex.String()
	}
}

// Eval validates and evaluates a single step.
func Eval(s Step) (Result, error) {
	if err := s.Validate(); err != nil {
		return Result{}, err
	}

	return ops[s.Op].eval(s), nil
}
