package kernel

import (
	"github.com/tphakala/go-fir-correlator/internal/simdops"
	"github.com/tphakala/go-fir-correlator/internal/vec"
)

// The symmetric kernels take the first half of a linear-phase filter of length
// 2*numCoeffs. coeffs[k] weights both tap k and tap 2*numCoeffs-1-k, so each
// output costs numCoeffs multiplies instead of 2*numCoeffs:
//
//	out[i] = Σ_{j<numCoeffs} coeffs[j] * (in[i+j] + in[i+2*numCoeffs-1-j])

// SymmetricScalar is the reference symmetric correlator. Accepts any numCoeffs >= 1.
func SymmetricScalar[F simdops.Float](num, numCoeffs int, coeffs, in, out []F) {
	coeffs = coeffs[:numCoeffs]
	span := symmetricSpan * numCoeffs
	for i := range num {
		window := in[i : i+span]
		var acc F
		for j, c := range coeffs {
			acc += c * (window[j] + window[span-1-j])
		}
		out[i] = acc
	}
}

// SymmetricVec4 is the 4-lane symmetric correlator. numCoeffs must be a multiple of 4.
//
// The mirror taps are loaded forward from the tail of the window and lane-reversed,
// so lane k of the forward chunk at j meets tap 2*numCoeffs-1-(j+k).
func SymmetricVec4[F simdops.Float](num, numCoeffs int, coeffs, in, out []F) {
	coeffs = coeffs[:numCoeffs]
	span := symmetricSpan * numCoeffs
	tail := span - width4
	for i := range num {
		window := in[i : i+span]
		var acc vec.Vec4[F]
		for j := 0; j < numCoeffs; j += width4 {
			fwd := vec.Load4(window[j:])
			mirror := vec.Load4(window[tail-j:]).Permute(vec.Reverse)
			acc = acc.MulAdd(vec.Load4(coeffs[j:]), fwd.Add(mirror))
		}
		out[i] = acc.ReduceSum()
	}
}

// SymmetricVec8 is the 8-lane symmetric correlator. numCoeffs must be a multiple of 8.
//
// Reversing eight lanes needs a half swap before the in-half reversal, see vec.Vec8.Reverse.
func SymmetricVec8[F simdops.Float](num, numCoeffs int, coeffs, in, out []F) {
	coeffs = coeffs[:numCoeffs]
	span := symmetricSpan * numCoeffs
	tail := span - width8
	for i := range num {
		window := in[i : i+span]
		var acc vec.Vec8[F]
		for j := 0; j < numCoeffs; j += width8 {
			fwd := vec.Load8(window[j:])
			mirror := vec.Load8(window[tail-j:]).Reverse()
			acc = acc.MulAdd(vec.Load8(coeffs[j:]), fwd.Add(mirror))
		}
		out[i] = acc.ReduceSum()
	}
}
