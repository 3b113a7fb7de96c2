package kernel

import (
	"github.com/tphakala/go-fir-correlator/internal/simdops"
	"github.com/tphakala/simd/c128"
	"gonum.org/v1/gonum/dsp/fourier"
)

// FFTCorrelator performs overlap-save FFT correlation for long coefficient sets.
// This is O(N log N) per block vs O(N×M) for the direct kernels.
//
// Overlap-save method:
//  1. Process input in blocks of fftSize samples (with numCoeffs-1 overlap)
//  2. Each block produces blockSize = fftSize - numCoeffs + 1 valid outputs
//  3. The first numCoeffs-1 samples of each inverse block are discarded (circular wrap)
//
// The scratch buffers make an FFTCorrelator unsafe for concurrent use; create one
// per goroutine.
type FFTCorrelator struct {
	fft       *fourier.FFT
	fftSize   int
	blockSize int

	// Coefficients in frequency domain, reversed so that circular convolution
	// yields correlation.
	coeffsFFT []complex128
	numCoeffs int
	scale     float64 // 1/fftSize, gonum does not normalize the inverse

	block      []float64
	blockFFT   []complex128
	productFFT []complex128
	inverse    []float64
}

// NewFFTCorrelator transforms coeffs once for reuse by every Correlate call.
// Returns nil for an empty coefficient set.
func NewFFTCorrelator(coeffs []float64) *FFTCorrelator {
	numCoeffs := len(coeffs)
	if numCoeffs == 0 {
		return nil
	}

	// Next power of 2 >= 2*numCoeffs keeps at least half of each block valid.
	fftSize := defaultFFTBlockSize
	for fftSize < 2*numCoeffs {
		fftSize *= 2
	}

	fft := fourier.NewFFT(fftSize)

	// Circular convolution computes y[n] = Σ x[(n-k) mod N] * h[k]. With h reversed,
	// y[numCoeffs-1+i] = Σ x[i+m] * coeffs[m], which is the correlation we want.
	padded := make([]float64, fftSize)
	for i := range numCoeffs {
		padded[i] = coeffs[numCoeffs-1-i]
	}
	coeffsFFT := fft.Coefficients(nil, padded)

	fftLen := fftSize/fftHermitianDivisor + 1

	return &FFTCorrelator{
		fft:        fft,
		fftSize:    fftSize,
		blockSize:  fftSize - numCoeffs + 1,
		coeffsFFT:  coeffsFFT,
		numCoeffs:  numCoeffs,
		scale:      1.0 / float64(fftSize),
		block:      make([]float64, fftSize),
		blockFFT:   make([]complex128, fftLen),
		productFFT: make([]complex128, fftLen),
		inverse:    make([]float64, fftSize),
	}
}

// NumCoeffs returns the coefficient count the correlator was built for.
func (c *FFTCorrelator) NumCoeffs() int {
	return c.numCoeffs
}

// BlockSize returns the number of outputs produced per FFT block.
func (c *FFTCorrelator) BlockSize() int {
	return c.blockSize
}

// Correlate writes num outputs with the RealScalar contract. in must hold at least
// num+NumCoeffs()-1 samples and out at least num.
func (c *FFTCorrelator) Correlate(num int, in, out []float64) {
	if num == 0 {
		return
	}
	signal := in[:num+c.numCoeffs-1]
	signalLen := len(signal)
	overlap := c.numCoeffs - 1
	scale := simdops.Float64Ops().Scale

	for outIdx := 0; outIdx < num; {
		clear(c.block)

		// Block b reads signal[b*blockSize : b*blockSize+fftSize], zero-padded at the end.
		copyLen := min(c.fftSize, signalLen-outIdx)
		copy(c.block, signal[outIdx:outIdx+copyLen])

		c.blockFFT = c.fft.Coefficients(c.blockFFT, c.block)
		c128.Mul(c.productFFT, c.blockFFT, c.coeffsFFT)
		c.inverse = c.fft.Sequence(c.inverse, c.productFFT)
		scale(c.inverse, c.inverse, c.scale)

		valid := min(c.blockSize, num-outIdx)
		copy(out[outIdx:outIdx+valid], c.inverse[overlap:overlap+valid])
		outIdx += valid
	}
}
