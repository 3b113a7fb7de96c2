package fircorr

import (
	"fmt"
	"unsafe"

	"github.com/tphakala/go-fir-correlator/internal/cpu"
	"github.com/tphakala/go-fir-correlator/internal/kernel"
	"github.com/tphakala/go-fir-correlator/internal/simdops"
)

// Float is the set of supported sample types.
type Float = simdops.Float

type kernelTable[F Float] [numVariants]kernel.Func[F]

func newKernelTable[F Float]() kernelTable[F] {
	return kernelTable[F]{
		RealScalar:       kernel.RealScalar[F],
		RealVec4:         kernel.RealVec4[F],
		RealVec8:         kernel.RealVec8[F],
		RealAccel:        kernel.RealAccel[F],
		SymmetricScalar:  kernel.SymmetricScalar[F],
		SymmetricVec4:    kernel.SymmetricVec4[F],
		SymmetricVec8:    kernel.SymmetricVec8[F],
		ComplexScalar:    kernel.ComplexScalar[F],
		ComplexVec4:      kernel.ComplexVec4[F],
		ComplexVec4Split: kernel.ComplexVec4Split[F],
		ComplexVec8:      kernel.ComplexVec8[F],
	}
}

// Pre-instantiated kernel tables, read-only after package init.
var (
	kernels32 = newKernelTable[float32]()
	kernels64 = newKernelTable[float64]()
)

func kernelsFor[F Float]() *kernelTable[F] {
	var zero F
	switch any(zero).(type) {
	case float32:
		t, ok := any(&kernels32).(*kernelTable[F])
		if !ok {
			panic("fircorr: type assertion failed for float32")
		}
		return t
	case float64:
		t, ok := any(&kernels64).(*kernelTable[F])
		if !ok {
			panic("fircorr: type assertion failed for float64")
		}
		return t
	default:
		panic("fircorr: unsupported float type")
	}
}

// Validate checks the length relationships variant v requires:
//   - num >= 0 and numCoeffs >= 1
//   - the resulting buffer lengths fit in an int
//   - numCoeffs is a multiple of v.Width()
//   - coeffsLen >= numCoeffs, inLen >= v.InputLen(num, numCoeffs), outLen >= v.OutputLen(num)
//
// Buffer lengths are in scalars, so complex buffers count two per sample.
func Validate(v Variant, num, numCoeffs, coeffsLen, inLen, outLen int) error {
	if !v.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownVariant, int(v))
	}
	if num < 0 {
		return fmt.Errorf("%w: num must be non-negative, got %d", ErrInvalidCount, num)
	}
	if numCoeffs < 1 {
		return fmt.Errorf("%w: numCoeffs must be at least 1, got %d", ErrInvalidCount, numCoeffs)
	}
	if limit := v.maxNum(numCoeffs); num > limit {
		return fmt.Errorf("%w: %s buffer lengths for num=%d, numCoeffs=%d overflow int", ErrInvalidCount, v, num, numCoeffs)
	}
	if numCoeffs%v.Width() != 0 {
		return fmt.Errorf("%w: %s needs a multiple of %d, got %d", ErrCoeffAlignment, v, v.Width(), numCoeffs)
	}
	if coeffsLen < numCoeffs {
		return fmt.Errorf("%w: need %d coefficients, got %d", ErrShortBuffer, numCoeffs, coeffsLen)
	}
	if need := v.InputLen(num, numCoeffs); inLen < need {
		return fmt.Errorf("%w: %s needs %d input values, got %d", ErrShortBuffer, v, need, inLen)
	}
	if need := v.OutputLen(num); outLen < need {
		return fmt.Errorf("%w: %s needs %d output values, got %d", ErrShortBuffer, v, need, outLen)
	}
	return nil
}

// Filter validates the buffers and runs kernel v. Nothing is written on error.
//
// Only out[:v.OutputLen(num)] is written. Disjoint output ranges are independent, so
// callers may split one call into several concurrent calls by offsetting in and out.
func Filter[F Float](v Variant, num, numCoeffs int, coeffs, in, out []F) error {
	if err := Validate(v, num, numCoeffs, len(coeffs), len(in), len(out)); err != nil {
		return err
	}
	if num == 0 {
		return nil
	}

	dst := out[:v.OutputLen(num)]
	if overlaps(dst, in[:v.InputLen(num, numCoeffs)]) || overlaps(dst, coeffs[:numCoeffs]) {
		return fmt.Errorf("%w: %s", ErrOverlap, v)
	}

	kernelsFor[F]()[v](num, numCoeffs, coeffs, in, out)
	return nil
}

// Select returns the preferred variant for a domain, coefficient count and the
// detected (or forced) vector width.
func Select(d Domain, numCoeffs int) Variant {
	return selectForWidth(d, numCoeffs, cpu.VectorWidth())
}

func selectForWidth(d Domain, numCoeffs, width int) Variant {
	fits8 := width >= width8 && numCoeffs%width8 == 0
	fits4 := width >= width4 && numCoeffs%width4 == 0

	switch d {
	case DomainSymmetric:
		switch {
		case fits8:
			return SymmetricVec8
		case fits4:
			return SymmetricVec4
		default:
			return SymmetricScalar
		}
	case DomainComplex:
		switch {
		case fits8:
			return ComplexVec8
		case fits4:
			return ComplexVec4Split
		default:
			return ComplexScalar
		}
	default:
		switch {
		case fits8:
			return RealVec8
		case fits4:
			return RealVec4
		case width > widthScalar:
			return RealAccel
		default:
			return RealScalar
		}
	}
}

// FilterReal correlates real samples with the best real kernel for numCoeffs.
func FilterReal[F Float](num, numCoeffs int, coeffs, in, out []F) error {
	return Filter(Select(DomainReal, numCoeffs), num, numCoeffs, coeffs, in, out)
}

// FilterSymmetric correlates real samples with the linear-phase filter whose first
// half is coeffs[:numCoeffs]. in must hold num+2*numCoeffs-1 samples.
func FilterSymmetric[F Float](num, numCoeffs int, coeffs, in, out []F) error {
	return Filter(Select(DomainSymmetric, numCoeffs), num, numCoeffs, coeffs, in, out)
}

// FilterComplex correlates interleaved complex samples with real coefficients.
// in must hold 2*(num+numCoeffs-1) values and out 2*num.
func FilterComplex[F Float](num, numCoeffs int, coeffs, in, out []F) error {
	return Filter(Select(DomainComplex, numCoeffs), num, numCoeffs, coeffs, in, out)
}

// overlaps reports whether a and b share any memory.
func overlaps[F Float](a, b []F) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	var zero F
	size := unsafe.Sizeof(zero)
	aStart := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	bStart := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	aEnd := aStart + uintptr(len(a))*size
	bEnd := bStart + uintptr(len(b))*size
	return aStart < bEnd && bStart < aEnd
}
