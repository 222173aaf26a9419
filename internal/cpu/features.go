package cpu

import (
	"runtime"
	"sync"

	"golang.org/x/sys/cpu"
)

// Features describes the CPU capabilities relevant to kernel selection.
type Features struct {
	HasSSE2      bool
	HasAVX2      bool
	HasAVX512    bool
	HasNEON      bool
	ForceGeneric bool
	Architecture string
}

// HasWideVectors reports whether the CPU has vector units wide enough for
// the unrolled kernels to pay off.
func (f Features) HasWideVectors() bool {
	if f.ForceGeneric {
		return false
	}

	return f.HasAVX2 || f.HasAVX512 || f.HasNEON
}

var (
	detectOnce sync.Once
	detected   Features

	forcedMu sync.RWMutex
	forced   *Features
)

// DetectFeatures reports the available CPU features for the current process.
// The hardware is queried once; SetForcedFeatures overrides the result.
func DetectFeatures() Features {
	forcedMu.RLock()
	f := forced
	forcedMu.RUnlock()

	if f != nil {
		return *f
	}

	detectOnce.Do(func() {
		detected = detectFeaturesImpl()
	})

	return detected
}

// SetForcedFeatures overrides feature detection, mainly for tests.
func SetForcedFeatures(f Features) {
	forcedMu.Lock()
	forced = &f
	forcedMu.Unlock()
}

// ResetDetection clears any override installed by SetForcedFeatures.
func ResetDetection() {
	forcedMu.Lock()
	forced = nil
	forcedMu.Unlock()
}

func detectFeaturesImpl() Features {
	return Features{
		HasSSE2:      cpu.X86.HasSSE2,
		HasAVX2:      cpu.X86.HasAVX2,
		HasAVX512:    cpu.X86.HasAVX512F,
		HasNEON:      cpu.ARM64.HasASIMD,
		Architecture: runtime.GOARCH,
	}
}
