// Package design builds Kaiser-windowed lowpass coefficient sets for the command
// line tool, examples and benchmarks. The correlation kernels take coefficients
// as given and never call into this package.
package design

import (
	"errors"
	"fmt"
	"math"

	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/dsp/fourier"
)

// ErrInvalidParams indicates filter parameters outside the supported range.
var ErrInvalidParams = errors.New("invalid filter parameters")

// BesselI0 computes the modified Bessel function of the first kind, order zero.
func BesselI0(x float64) float64 {
	ax := math.Abs(x)
	if ax < besselSmallArgThreshold {
		t := x / besselSmallArgThreshold
		t *= t
		return 1.0 + t*(besselI0Coeff1+t*(besselI0Coeff2+t*(besselI0Coeff3+
			t*(besselI0Coeff4+t*(besselI0Coeff5+t*besselI0Coeff6)))))
	}

	t := besselSmallArgThreshold / ax
	p := besselI0AsympCoeff0 + t*(besselI0AsympCoeff1+t*(besselI0AsympCoeff2+
		t*(besselI0AsympCoeff3+t*(besselI0AsympCoeff4+t*(besselI0AsympCoeff5+
			t*(besselI0AsympCoeff6+t*(besselI0AsympCoeff7+t*besselI0AsympCoeff8)))))))
	return math.Exp(ax) * p / math.Sqrt(ax)
}

// KaiserBeta returns the window β that reaches the given stopband attenuation in dB.
func KaiserBeta(attenuation float64) float64 {
	switch {
	case attenuation > kaiserAttHigh:
		return kaiserBetaHighCoeff * (attenuation - kaiserBetaHighOffset)
	case attenuation >= kaiserAttMedium:
		d := attenuation - kaiserAttMedium
		return kaiserBetaMediumCoeff*math.Pow(d, kaiserBetaMediumPower) + kaiserBetaLinearCoeff*d
	default:
		return 0
	}
}

// KaiserWindow returns a symmetric Kaiser window of n points, peak 1 at the center.
func KaiserWindow(n int, beta float64) []float64 {
	if n < 1 {
		return nil
	}
	w := make([]float64, n)
	if n == 1 {
		w[0] = 1
		return w
	}

	alpha := float64(n-1) / 2
	i0Beta := BesselI0(beta)
	for i := range w {
		x := (float64(i) - alpha) / alpha
		w[i] = BesselI0(beta*math.Sqrt(1-x*x)) / i0Beta
	}
	return w
}

// Lowpass designs a linear-phase windowed-sinc lowpass of numTaps coefficients with
// unity DC gain. cutoff is normalized to the sample rate and must lie in (0, 0.5).
func Lowpass(numTaps int, cutoff, attenuation float64) ([]float64, error) {
	if numTaps < minTaps || numTaps > maxTaps {
		return nil, fmt.Errorf("%w: %d taps (must be in [%d, %d])", ErrInvalidParams, numTaps, minTaps, maxTaps)
	}
	if cutoff <= 0 || cutoff >= nyquist {
		return nil, fmt.Errorf("%w: cutoff %g (must be in (0, %g))", ErrInvalidParams, cutoff, nyquist)
	}
	if attenuation < 0 {
		return nil, fmt.Errorf("%w: attenuation %g dB", ErrInvalidParams, attenuation)
	}

	h := KaiserWindow(numTaps, KaiserBeta(attenuation))
	center := float64(numTaps-1) / 2
	for i := range h {
		x := float64(i) - center
		sinc := 2 * cutoff
		if math.Abs(x) >= sincZeroThreshold {
			sinc = math.Sin(2*math.Pi*cutoff*x) / (math.Pi * x)
		}
		h[i] *= sinc
	}

	if sum := f64.Sum(h); math.Abs(sum) > sincZeroThreshold {
		f64.Scale(h, h, 1/sum)
	}
	return h, nil
}

// Half returns the first half of an even-length palindromic filter, the form the
// symmetric kernels take.
func Half(h []float64) ([]float64, error) {
	n := len(h)
	half := n / 2
	if n == 0 || n%2 != 0 {
		return nil, fmt.Errorf("%w: symmetric split needs an even length, got %d", ErrInvalidParams, n)
	}
	for i := range half {
		if math.Abs(h[i]-h[n-1-i]) > symmetryTolerance {
			return nil, fmt.Errorf("%w: tap %d does not mirror tap %d", ErrInvalidParams, i, n-1-i)
		}
	}
	return h[:half:half], nil
}

// MagnitudeDB returns |H(f)| in dB at fftSize/2+1 evenly spaced frequencies from
// DC to Nyquist. fftSize must be at least len(h).
func MagnitudeDB(h []float64, fftSize int) []float64 {
	padded := make([]float64, max(fftSize, len(h)))
	copy(padded, h)

	coeffs := fourier.NewFFT(len(padded)).Coefficients(nil, padded)
	db := make([]float64, len(coeffs))
	for i, c := range coeffs {
		mag := math.Hypot(real(c), imag(c))
		db[i] = dbMultiplier * math.Log10(max(mag, minMagnitude))
	}
	return db
}

// StopbandPeakDB returns the largest magnitude in dB at normalized frequencies at or
// above stopStart.
func StopbandPeakDB(h []float64, fftSize int, stopStart float64) float64 {
	db := MagnitudeDB(h, fftSize)
	n := max(fftSize, len(h))
	first := int(math.Ceil(stopStart * float64(n)))

	peak := math.Inf(-1)
	for _, v := range db[min(first, len(db)-1):] {
		peak = max(peak, v)
	}
	return peak
}
