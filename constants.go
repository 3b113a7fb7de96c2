package fircorr

import (
	"github.com/tphakala/go-fir-correlator/internal/cpu"
	"github.com/tphakala/go-fir-correlator/internal/kernel"
)

// Lane counts
const (
	widthScalar = cpu.WidthScalar
	width4      = cpu.Width4
	width8      = cpu.Width8
)

// Buffer layout
const (
	complexStride = 2 // scalars per interleaved complex sample
	symmetricSpan = 2 // full filter length / half-length coefficient count
)

// MinFFTCoeffs is the coefficient count from which FFTCorrelator switches from
// direct correlation to overlap-save FFT correlation.
const MinFFTCoeffs = kernel.MinFFTCoeffs
