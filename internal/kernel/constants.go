package kernel

import "github.com/tphakala/go-fir-correlator/internal/vec"

const (
	// complexStride is the number of scalars per interleaved complex sample.
	complexStride = 2

	// symmetricSpan is the ratio of the full filter length to the half-length
	// coefficient set supplied to the symmetric kernels.
	symmetricSpan = 2

	width4 = vec.Width4
	width8 = vec.Width8
)

// FFT correlation constants.
const (
	// Minimum coefficient count for FFT correlation (below this, direct is faster).
	// The crossover with direct SIMD correlation sits around 400-500 taps.
	MinFFTCoeffs = 400

	// Default FFT block size (power of 2 for efficiency)
	defaultFFTBlockSize = 512

	// fftHermitianDivisor is used to calculate unique frequency bins in real FFT.
	// A real FFT of size N has N/2 + 1 unique complex coefficients.
	fftHermitianDivisor = 2
)
