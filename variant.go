package fircorr

import (
	"fmt"
	"math"
	"strings"
)

// Domain is the signal domain a kernel operates on.
type Domain int

const (
	// DomainReal correlates real samples with a full coefficient set.
	DomainReal Domain = iota

	// DomainSymmetric correlates real samples with the first half of a
	// mirror-symmetric (linear-phase) coefficient set.
	DomainSymmetric

	// DomainComplex correlates interleaved (real, imaginary) samples with real
	// coefficients.
	DomainComplex
)

// String returns a human-readable name for the domain.
func (d Domain) String() string {
	switch d {
	case DomainReal:
		return "real"
	case DomainSymmetric:
		return "symmetric"
	case DomainComplex:
		return "complex"
	default:
		return "unknown"
	}
}

// Variant identifies one kernel implementation.
type Variant int

const (
	// RealScalar is the reference real correlator. Any coefficient count.
	RealScalar Variant = iota

	// RealVec4 uses a 4-lane accumulator. Coefficient count must be a multiple of 4.
	RealVec4

	// RealVec8 uses an 8-lane accumulator. Coefficient count must be a multiple of 8.
	RealVec8

	// RealAccel delegates to the assembly correlation in github.com/tphakala/simd.
	// Any coefficient count.
	RealAccel

	// SymmetricScalar applies each half-coefficient to the sum of its mirrored taps.
	// Any coefficient count.
	SymmetricScalar

	// SymmetricVec4 is the 4-lane symmetric correlator.
	SymmetricVec4

	// SymmetricVec8 is the 8-lane symmetric correlator.
	SymmetricVec8

	// ComplexScalar filters interleaved complex samples. Any coefficient count.
	ComplexScalar

	// ComplexVec4 is the 4-lane complex correlator with one accumulator.
	ComplexVec4

	// ComplexVec4Split is the 4-lane complex correlator with two accumulators fed
	// from separately addressed loads.
	ComplexVec4Split

	// ComplexVec8 is the 8-lane complex correlator.
	ComplexVec8

	numVariants
)

type variantInfo struct {
	name   string
	domain Domain
	width  int
}

var variantTable = [numVariants]variantInfo{
	RealScalar:       {"real-scalar", DomainReal, widthScalar},
	RealVec4:         {"real-vec4", DomainReal, width4},
	RealVec8:         {"real-vec8", DomainReal, width8},
	RealAccel:        {"real-accel", DomainReal, widthScalar},
	SymmetricScalar:  {"symmetric-scalar", DomainSymmetric, widthScalar},
	SymmetricVec4:    {"symmetric-vec4", DomainSymmetric, width4},
	SymmetricVec8:    {"symmetric-vec8", DomainSymmetric, width8},
	ComplexScalar:    {"complex-scalar", DomainComplex, widthScalar},
	ComplexVec4:      {"complex-vec4", DomainComplex, width4},
	ComplexVec4Split: {"complex-vec4-split", DomainComplex, width4},
	ComplexVec8:      {"complex-vec8", DomainComplex, width8},
}

// Variants returns every kernel variant in declaration order.
func Variants() []Variant {
	vs := make([]Variant, numVariants)
	for i := range vs {
		vs[i] = Variant(i)
	}
	return vs
}

// Valid reports whether v names a known kernel.
func (v Variant) Valid() bool {
	return v >= 0 && v < numVariants
}

// String returns the variant's name as accepted by ParseVariant.
func (v Variant) String() string {
	if !v.Valid() {
		return fmt.Sprintf("Variant(%d)", int(v))
	}
	return variantTable[v].name
}

// Domain returns the signal domain of v, or DomainReal for an invalid variant.
func (v Variant) Domain() Domain {
	if !v.Valid() {
		return DomainReal
	}
	return variantTable[v].domain
}

// Width returns the lane count of v. numCoeffs must be a multiple of it.
// An invalid variant reports widthScalar.
func (v Variant) Width() int {
	if !v.Valid() {
		return widthScalar
	}
	return variantTable[v].width
}

// maxNum returns the largest output count whose buffer lengths fit in an int,
// or -1 when even the coefficient span does not fit.
func (v Variant) maxNum(numCoeffs int) int {
	limit := math.MaxInt
	if v.Domain() == DomainComplex {
		limit /= complexStride
	}
	taps := numCoeffs
	if v.Domain() == DomainSymmetric {
		if numCoeffs > limit/symmetricSpan {
			return -1
		}
		taps = symmetricSpan * numCoeffs
	}
	return limit - taps + 1
}

// InputLen returns the number of scalars v reads from the input buffer.
// The result is only meaningful for counts Validate accepts.
func (v Variant) InputLen(num, numCoeffs int) int {
	if num == 0 {
		return 0
	}
	switch v.Domain() {
	case DomainSymmetric:
		return num + symmetricSpan*numCoeffs - 1
	case DomainComplex:
		return complexStride * (num + numCoeffs - 1)
	default:
		return num + numCoeffs - 1
	}
}

// OutputLen returns the number of scalars v writes to the output buffer.
func (v Variant) OutputLen(num int) int {
	if v.Domain() == DomainComplex {
		return complexStride * num
	}
	return num
}

// ParseVariant parses a variant name such as "real-vec8" or "complex-vec4-split".
func ParseVariant(s string) (Variant, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for v, info := range variantTable {
		if info.name == name {
			return Variant(v), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}
