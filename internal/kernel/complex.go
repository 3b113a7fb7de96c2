package kernel

import (
	"github.com/tphakala/go-fir-correlator/internal/simdops"
	"github.com/tphakala/go-fir-correlator/internal/vec"
)

// ComplexScalar filters interleaved (real, imaginary) samples with real coefficients.
// The real and imaginary channels are two independent real correlations:
//
//	out[2i]   = Σ_j in[2(i+j)]   * coeffs[j]
//	out[2i+1] = Σ_j in[2(i+j)+1] * coeffs[j]
func ComplexScalar[F simdops.Float](num, numCoeffs int, coeffs, in, out []F) {
	coeffs = coeffs[:numCoeffs]
	for i := range num {
		base := complexStride * i
		window := in[base : base+complexStride*numCoeffs]
		var re, im F
		for j, c := range coeffs {
			re += window[complexStride*j] * c
			im += window[complexStride*j+1] * c
		}
		out[base] = re
		out[base+1] = im
	}
}

// ComplexVec4 is the 4-lane complex correlator with a single accumulator.
// numCoeffs must be a multiple of 4.
//
// Each coefficient is duplicated into an adjacent lane pair so one multiply covers
// a whole (real, imaginary) sample. A 4-coefficient chunk spans two loads.
func ComplexVec4[F simdops.Float](num, numCoeffs int, coeffs, in, out []F) {
	coeffs = coeffs[:numCoeffs]
	for i := range num {
		base := complexStride * i
		window := in[base : base+complexStride*numCoeffs]
		var acc vec.Vec4[F]
		for j := 0; j < numCoeffs; j += width4 {
			c := vec.Load4(coeffs[j:])
			k := complexStride * j
			acc = acc.MulAdd(c.Permute(vec.DupLow), vec.Load4(window[k:]))
			acc = acc.MulAdd(c.Permute(vec.DupHigh), vec.Load4(window[k+width4:]))
		}
		out[base], out[base+1] = reduceComplex4(acc)
	}
}

// ComplexVec4Split is the two-accumulator form of ComplexVec4. The low and high
// coefficient pairs feed separate accumulators from separately addressed loads, so
// consecutive multiply-adds do not depend on each other. The accumulators are summed
// before the shared reduction. numCoeffs must be a multiple of 4.
func ComplexVec4Split[F simdops.Float](num, numCoeffs int, coeffs, in, out []F) {
	coeffs = coeffs[:numCoeffs]
	for i := range num {
		base := complexStride * i
		window := in[base : base+complexStride*numCoeffs]
		var accLo, accHi vec.Vec4[F]
		for j := 0; j < numCoeffs; j += width4 {
			c := vec.Load4(coeffs[j:])
			lo := c.Permute(vec.DupLow)
			hi := c.Permute(vec.DupHigh)
			k := complexStride * j
			accLo = accLo.MulAdd(lo, vec.Load4(window[k:]))
			accHi = accHi.MulAdd(hi, vec.Load4(window[k+width4:]))
		}
		out[base], out[base+1] = reduceComplex4(accLo.Add(accHi))
	}
}

// ComplexVec8 is the 8-lane complex correlator. numCoeffs must be a multiple of 8.
func ComplexVec8[F simdops.Float](num, numCoeffs int, coeffs, in, out []F) {
	coeffs = coeffs[:numCoeffs]
	for i := range num {
		base := complexStride * i
		window := in[base : base+complexStride*numCoeffs]
		var acc vec.Vec8[F]
		for j := 0; j < numCoeffs; j += width8 {
			c := vec.Load8(coeffs[j:])
			k := complexStride * j
			acc = acc.MulAdd(c.Lo.Spread(), vec.Load8(window[k:]))
			acc = acc.MulAdd(c.Hi.Spread(), vec.Load8(window[k+width8:]))
		}
		out[base], out[base+1] = reduceComplex8(acc)
	}
}

// reduceComplex4 splits an interleaved accumulator [r0 i0 r1 i1] into its real and
// imaginary sums.
func reduceComplex4[F simdops.Float](acc vec.Vec4[F]) (re, im F) {
	acc = acc.Permute(vec.EvenOdd) // [r0 r1 i0 i1]
	acc = acc.HAdd(acc)            // [r0+r1 i0+i1 ...]
	return acc[0], acc[1]
}

// reduceComplex8 is reduceComplex4 for [r0 i0 r1 i1 | r2 i2 r3 i3]. Each half is
// gathered to [r r i i] first, because the horizontal add pairs lanes within a half.
func reduceComplex8[F simdops.Float](acc vec.Vec8[F]) (re, im F) {
	acc = acc.PermuteHalves(vec.EvenOdd) // [r0 r1 i0 i1 | r2 r3 i2 i3]
	sum := acc.Lo.HAdd(acc.Hi)           // [r01 i01 r23 i23]
	sum = sum.Permute(vec.EvenOdd)       // [r01 r23 i01 i23]
	sum = sum.HAdd(sum)                  // [re im re im]
	return sum[0], sum[1]
}
