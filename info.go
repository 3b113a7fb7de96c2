package fircorr

import (
	"github.com/tphakala/go-fir-correlator/internal/cpu"
	simdcpu "github.com/tphakala/simd/cpu"
)

// Info describes the dispatch decisions on the current machine.
type Info struct {
	// Architecture is runtime.GOARCH.
	Architecture string

	// HardwareWidth is the widest vector width the CPU supports.
	HardwareWidth int

	// Width is the width auto-dispatch selects for, after the FIRCORR_WIDTH override.
	Width int

	// SIMDType describes the instruction set used by the library-accelerated kernels.
	SIMDType string
}

// GetInfo returns dispatch information for this process.
func GetInfo() Info {
	f := cpu.DetectFeatures()
	return Info{
		Architecture:  f.Architecture,
		HardwareWidth: f.VectorWidth(),
		Width:         cpu.VectorWidth(),
		SIMDType:      simdcpu.Info(),
	}
}
