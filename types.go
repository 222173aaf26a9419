package algocomplex

import "github.com/cwbudde/algo-complex/internal/cxtypes"

// Operand is the closed set of right-hand operand kinds accepted by the
// generic operator functions: another Complex or a real float64 scalar,
// which is treated as r + 0i.
type Operand interface {
	Complex | float64
}

// KernelStrategy selects the batch kernels used by the slice helpers.
// The canonical definition is in internal/cxtypes.
type KernelStrategy = cxtypes.KernelStrategy

const (
	KernelAuto     = cxtypes.KernelAuto
	KernelGeneric  = cxtypes.KernelGeneric
	KernelUnrolled = cxtypes.KernelUnrolled
)
