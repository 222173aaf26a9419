package cpu

import (
	"runtime"
	"testing"
)

// Tests in this file mutate the process-wide override and must not run in parallel.

func TestDetectFeaturesArchitecture(t *testing.T) {
	ResetDetection()

	f := DetectFeatures()
	if f.Architecture != runtime.GOARCH {
		t.Errorf("Architecture = %q, want %q", f.Architecture, runtime.GOARCH)
	}

	if f.ForceGeneric {
		t.Error("ForceGeneric set by hardware detection")
	}
}

func TestDetectFeaturesStable(t *testing.T) {
	ResetDetection()

	if a, b := DetectFeatures(), DetectFeatures(); a != b {
		t.Errorf("DetectFeatures not stable: %+v vs %+v", a, b)
	}
}

func TestSetForcedFeatures(t *testing.T) {
	defer ResetDetection()

	want := Features{HasAVX2: true, Architecture: "test"}
	SetForcedFeatures(want)

	if got := DetectFeatures(); got != want {
		t.Errorf("DetectFeatures() = %+v, want %+v", got, want)
	}

	ResetDetection()

	if got := DetectFeatures(); got.Architecture != runtime.GOARCH {
		t.Errorf("after reset Architecture = %q, want %q", got.Architecture, runtime.GOARCH)
	}
}

func TestHasWideVectors(t *testing.T) {
	tests := []struct {
		name   string
		f      Features
		expect bool
	}{
		{"none", Features{}, false},
		{"sse2 only", Features{HasSSE2: true}, false},
		{"avx2", Features{HasSSE2: true, HasAVX2: true}, true},
		{"avx512", Features{HasAVX512: true}, true},
		{"neon", Features{HasNEON: true}, true},
		{"forced generic", Features{HasAVX2: true, ForceGeneric: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f.HasWideVectors(); got != tt.expect {
				t.Errorf("HasWideVectors() = %v, want %v", got, tt.expect)
			}
		})
	}
}
