package script

import (
	"sort"

	algocomplex "github.com/cwbudde/algo-complex"
)

type arity uint8

const (
	arityUnary arity = iota
	arityBinary
)

type opDef struct {
	arity arity
	usage string
	eval  func(s Step) Result
}

func complexOp(f func(algocomplex.Complex) algocomplex.Complex, usage string) opDef {
	return opDef{arity: arityUnary, usage: usage, eval: func(s Step) Result {
		return complexResult(f(s.Z.Complex()))
	}}
}

func realOp(f func(algocomplex.Complex) float64, usage string) opDef {
	return opDef{arity: arityUnary, usage: usage, eval: func(s Step) Result {
		return realResult(f(s.Z.Complex()))
	}}
}

// binaryOp dispatches on the operand kind the step carries.
func binaryOp(
	withComplex func(algocomplex.Complex, algocomplex.Complex) algocomplex.Complex,
	withReal func(algocomplex.Complex, float64) algocomplex.Complex,
	usage string,
) opDef {
	return opDef{arity: arityBinary, usage: usage, eval: func(s Step) Result {
		if s.W != nil {
			return complexResult(withComplex(s.Z.Complex(), s.W.Complex()))
		}

		return complexResult(withReal(s.Z.Complex(), *s.N))
	}}
}

func compareOp(
	withComplex func(algocomplex.Complex, algocomplex.Complex) bool,
	withReal func(algocomplex.Complex, float64) bool,
	usage string,
) opDef {
	return opDef{arity: arityBinary, usage: usage, eval: func(s Step) Result {
		if s.W != nil {
			return boolResult(withComplex(s.Z.Complex(), s.W.Complex()))
		}

		return boolResult(withReal(s.Z.Complex(), *s.N))
	}}
}

var ops = map[string]opDef{
	"pos":   complexOp(algocomplex.Complex.Pos, "+z"),
	"neg":   complexOp(algocomplex.Complex.Neg, "-z"),
	"conj":  complexOp(algocomplex.Complex.Conj, "complex conjugate"),
	"exp":   complexOp(algocomplex.Complex.Exp, "e**z"),
	"log":   complexOp(algocomplex.Complex.Log, "principal natural logarithm"),
	"log10": complexOp(algocomplex.Complex.Log10, "principal base-10 logarithm"),
	"sqrt":  complexOp(algocomplex.Complex.Sqrt, "principal square root"),
	"sin":   complexOp(algocomplex.Complex.Sin, "sine"),
	"cos":   complexOp(algocomplex.Complex.Cos, "cosine"),
	"tan":   complexOp(algocomplex.Complex.Tan, "tangent"),
	"sinh":  complexOp(algocomplex.Complex.Sinh, "hyperbolic sine"),
	"cosh":  complexOp(algocomplex.Complex.Cosh, "hyperbolic cosine"),
	"tanh":  complexOp(algocomplex.Complex.Tanh, "hyperbolic tangent"),
	"polar": complexOp(func(z algocomplex.Complex) algocomplex.Complex {
		return algocomplex.Polar(z.Real(), z.Imag())
	}, "z = [rho, theta] to rectangular form"),

	"abs":  realOp(algocomplex.Complex.Abs, "modulus |z|"),
	"arg":  realOp(algocomplex.Complex.Arg, "argument in (-pi, pi]"),
	"norm": realOp(algocomplex.Complex.Norm, "squared modulus"),
	"real": realOp(algocomplex.Complex.Real, "real component"),
	"imag": realOp(algocomplex.Complex.Imag, "imaginary component"),

	"add": binaryOp(algocomplex.Add[algocomplex.Complex], algocomplex.Add[float64], "z + w or z + n"),
	"sub": binaryOp(algocomplex.Sub[algocomplex.Complex], algocomplex.Sub[float64], "z - w or z - n"),
	"mul": binaryOp(algocomplex.Mul[algocomplex.Complex], algocomplex.Mul[float64], "z * w or z * n"),
	"div": binaryOp(algocomplex.Div[algocomplex.Complex], algocomplex.Div[float64], "z / w or z / n"),
	"pow": binaryOp(algocomplex.Complex.PowComplex, algocomplex.Complex.Pow, "principal z**w or z**n"),

	"eq": compareOp(algocomplex.Equal[algocomplex.Complex], algocomplex.Equal[float64], "exact z == w or z == n"),
	"ne": compareOp(algocomplex.NotEqual[algocomplex.Complex], algocomplex.NotEqual[float64], "exact z != w or z != n"),
}

// OpInfo describes a registered operation.
type OpInfo struct {
	Name   string
	Binary bool
	Usage  string
}

// Ops lists the registered operations sorted by name.
func Ops() []OpInfo {
	out := make([]OpInfo, 0, len(ops))
	for name, def := range ops {
		out = append(out, OpInfo{Name: name, Binary: def.arity == arityBinary, Usage: def.usage})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})

	return out
}

// Lookup reports whether name is a registered operation and whether it
// takes a right-hand operand.
func Lookup(name string) (info OpInfo, ok bool) {
	def, ok := ops[name]
	if !ok {
		return OpInfo{}, false
	}

	return OpInfo{Name: name, Binary: def.arity == arityBinary, Usage: def.usage}, true
}
