// Package cpu detects the vector width available for kernel selection.
//
// Detection runs once on first use and is cached. The FIRCORR_WIDTH environment
// variable can narrow the width ("1", "4" or "8"); a request wider than the hardware
// supports is ignored. Tests can pin a width with SetForcedWidth.
package cpu

import (
	"os"
	"strconv"
	"strings"
	"sync"
)

// Features describes CPU capabilities relevant to kernel selection.
type Features struct {
	// x86/amd64 SIMD features
	HasSSE2 bool // Streaming SIMD Extensions 2 (baseline for amd64)
	HasAVX  bool // 256-bit floating-point vectors
	HasAVX2 bool // Advanced Vector Extensions 2

	// ARM SIMD features
	HasNEON bool // ARM Advanced SIMD (NEON), 128-bit

	// Runtime information
	Architecture string // runtime.GOARCH (e.g., "amd64", "arm64")
}

// VectorWidth returns the widest float32 lane count the features support.
func (f Features) VectorWidth() int {
	switch {
	case f.HasAVX:
		return Width8
	case f.HasSSE2, f.HasNEON:
		return Width4
	default:
		return WidthScalar
	}
}

var (
	detectOnce       sync.Once
	detectedFeatures Features
	selectedWidth    int

	forcedMu    sync.RWMutex
	forcedWidth int
)

func detect() {
	detectedFeatures = detectFeaturesImpl()
	selectedWidth = applyOverride(detectedFeatures.VectorWidth(), os.Getenv(EnvWidth))
}

// applyOverride narrows hw to the width requested in env, if valid.
func applyOverride(hw int, env string) int {
	if env == "" {
		return hw
	}
	w, ok := ParseWidth(env)
	if !ok || w > hw {
		return hw
	}
	return w
}

// ParseWidth parses a vector width. Accepts "1"/"scalar", "4" and "8".
func ParseWidth(s string) (int, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "scalar" || s == "generic" {
		return WidthScalar, true
	}
	w, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	switch w {
	case WidthScalar, Width4, Width8:
		return w, true
	default:
		return 0, false
	}
}

// DetectFeatures returns the CPU features of the current system.
func DetectFeatures() Features {
	detectOnce.Do(detect)
	return detectedFeatures
}

// VectorWidth returns the lane count kernels should be selected for.
func VectorWidth() int {
	forcedMu.RLock()
	forced := forcedWidth
	forcedMu.RUnlock()
	if forced != 0 {
		return forced
	}

	detectOnce.Do(detect)
	return selectedWidth
}

// SetForcedWidth overrides detection. Intended for tests.
func SetForcedWidth(w int) {
	forcedMu.Lock()
	forcedWidth = w
	forcedMu.Unlock()
}

// ResetForcedWidth restores the detected width.
func ResetForcedWidth() {
	SetForcedWidth(0)
}
