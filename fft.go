package fircorr

import (
	"fmt"
	"slices"

	"github.com/tphakala/go-fir-correlator/internal/kernel"
)

// FFTCorrelator correlates real float64 samples against a fixed, long coefficient
// set using overlap-save FFT blocks. Below MinFFTCoeffs taps direct correlation is
// faster and is used instead.
//
// The coefficient set is transformed once by NewFFTCorrelator. An FFTCorrelator owns
// scratch buffers and must not be used from several goroutines at once.
type FFTCorrelator struct {
	coeffs []float64
	fft    *kernel.FFTCorrelator
}

// NewFFTCorrelator prepares a correlator for coeffs. The slice is copied.
func NewFFTCorrelator(coeffs []float64) (*FFTCorrelator, error) {
	if len(coeffs) == 0 {
		return nil, fmt.Errorf("%w: empty coefficient set", ErrInvalidCount)
	}
	c := &FFTCorrelator{coeffs: slices.Clone(coeffs)}
	if len(coeffs) >= MinFFTCoeffs {
		c.fft = kernel.NewFFTCorrelator(c.coeffs)
	}
	return c, nil
}

// NumCoeffs returns the coefficient count.
func (c *FFTCorrelator) NumCoeffs() int {
	return len(c.coeffs)
}

// UsesFFT reports whether Correlate runs the FFT path.
func (c *FFTCorrelator) UsesFFT() bool {
	return c.fft != nil
}

// Correlate writes out[i] = Σ_j in[i+j]*coeffs[j] for i in [0, num).
// in must hold num+NumCoeffs()-1 samples and out at least num.
func (c *FFTCorrelator) Correlate(num int, in, out []float64) error {
	numCoeffs := len(c.coeffs)
	if err := Validate(RealScalar, num, numCoeffs, numCoeffs, len(in), len(out)); err != nil {
		return err
	}
	if num == 0 {
		return nil
	}
	if overlaps(out[:num], in[:num+numCoeffs-1]) {
		return fmt.Errorf("%w: fft correlator", ErrOverlap)
	}

	if c.fft == nil {
		kernel.RealAccel(num, numCoeffs, c.coeffs, in, out)
		return nil
	}
	c.fft.Correlate(num, in, out)
	return nil
}
