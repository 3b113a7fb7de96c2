package kernel

import (
	"github.com/tphakala/go-fir-correlator/internal/simdops"
	"github.com/tphakala/go-fir-correlator/internal/vec"
)

// Func is the shared kernel signature.
type Func[F simdops.Float] func(num, numCoeffs int, coeffs, in, out []F)

// RealScalar is the reference real correlator:
//
//	out[i] = Σ_{j<numCoeffs} in[i+j] * coeffs[j]
//
// Accepts any numCoeffs >= 1. All other real kernels are checked against it.
func RealScalar[F simdops.Float](num, numCoeffs int, coeffs, in, out []F) {
	coeffs = coeffs[:numCoeffs]
	for i := range num {
		window := in[i : i+numCoeffs]
		var acc F
		for j, c := range coeffs {
			acc += window[j] * c
		}
		out[i] = acc
	}
}

// RealVec4 correlates with a 4-lane accumulator. numCoeffs must be a multiple of 4.
func RealVec4[F simdops.Float](num, numCoeffs int, coeffs, in, out []F) {
	coeffs = coeffs[:numCoeffs]
	for i := range num {
		window := in[i : i+numCoeffs]
		var acc vec.Vec4[F]
		for j := 0; j < numCoeffs; j += width4 {
			acc = acc.MulAdd(vec.Load4(coeffs[j:]), vec.Load4(window[j:]))
		}
		out[i] = acc.ReduceSum()
	}
}

// RealVec8 correlates with an 8-lane accumulator. numCoeffs must be a multiple of 8.
// The accumulator halves are reduced separately and their sums combined.
func RealVec8[F simdops.Float](num, numCoeffs int, coeffs, in, out []F) {
	coeffs = coeffs[:numCoeffs]
	for i := range num {
		window := in[i : i+numCoeffs]
		var acc vec.Vec8[F]
		for j := 0; j < numCoeffs; j += width8 {
			acc = acc.MulAdd(vec.Load8(coeffs[j:]), vec.Load8(window[j:]))
		}
		out[i] = acc.ReduceSum()
	}
}

// RealAccel delegates the whole block to the assembly correlation in
// github.com/tphakala/simd. Accepts any numCoeffs >= 1.
func RealAccel[F simdops.Float](num, numCoeffs int, coeffs, in, out []F) {
	if num == 0 {
		return
	}
	simdops.For[F]().ConvolveValid(out[:num], in[:num+numCoeffs-1], coeffs[:numCoeffs])
}
