package algocomplex

import "sync/atomic"

var kernelStrategy atomic.Uint32

// SetKernelStrategy sets the process-wide batch kernel strategy.
// KernelAuto (the default) picks by detected CPU features.
func SetKernelStrategy(s KernelStrategy) {
	kernelStrategy.Store(uint32(s))
}

// GetKernelStrategy returns the current process-wide batch kernel strategy.
func GetKernelStrategy() KernelStrategy {
	return KernelStrategy(kernelStrategy.Load())
}
