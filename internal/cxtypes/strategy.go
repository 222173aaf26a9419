package cxtypes

// KernelStrategy controls which batch kernels the slice helpers use.
type KernelStrategy uint32

const (
	KernelAuto     KernelStrategy = iota
	KernelGeneric                 // Straight element-wise loops
	KernelUnrolled                // Four elements per iteration
)

// String returns a human-readable name for the strategy.
func (s KernelStrategy) String() string {
	switch s {
	case KernelAuto:
		return "auto"
	case KernelGeneric:
		return "generic"
	case KernelUnrolled:
		return "unrolled"
	default:
		return "unknown"
	}
}

// ParseKernelStrategy is the inverse of String. ok is false for unknown names.
func ParseKernelStrategy(name string) (s KernelStrategy, ok bool) {
	switch name {
	case "auto":
		return KernelAuto, true
	case "generic":
		return KernelGeneric, true
	case "unrolled":
		return KernelUnrolled, true
	default:
		return KernelAuto, false
	}
}
