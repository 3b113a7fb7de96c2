// Package vec provides fixed-width numeric vectors for portable data-parallel kernels.
//
// Vec4 models one 128-bit register of four lanes. Vec8 models a 256-bit register as
// two independent 4-lane halves, the way AVX splits its registers into 128-bit lanes:
// horizontal adds and in-register permutes act on each half separately, and only
// SwapHalves moves data between them.
//
// The operations are plain Go over arrays so the compiler can keep small vectors in
// registers and auto-vectorize the lane loops; no operation allocates.
package vec

import "github.com/tphakala/go-fir-correlator/internal/simdops"

// Perm4 selects source lanes for a 4-lane permutation: out[k] = in[p[k]].
type Perm4 [Width4]uint8

// Common permutations.
var (
	// Reverse flips lane order.
	Reverse = Perm4{3, 2, 1, 0}

	// EvenOdd gathers even lanes into the low pair and odd lanes into the high pair.
	// For interleaved complex data [r0 i0 r1 i1] this yields [r0 r1 i0 i1].
	EvenOdd = Perm4{0, 2, 1, 3}

	// DupLow duplicates lanes 0 and 1 into adjacent pairs: [a0 a0 a1 a1].
	DupLow = Perm4{0, 0, 1, 1}

	// DupHigh duplicates lanes 2 and 3 into adjacent pairs: [a2 a2 a3 a3].
	DupHigh = Perm4{2, 2, 3, 3}
)

// Vec4 is a 4-lane vector.
type Vec4[F simdops.Float] [Width4]F

// Load4 loads the first four elements of s. s must have at least four elements.
func Load4[F simdops.Float](s []F) Vec4[F] {
	s = s[:Width4]
	return Vec4[F]{s[0], s[1], s[2], s[3]}
}

// Add returns the lane-wise sum v + w.
func (v Vec4[F]) Add(w Vec4[F]) Vec4[F] {
	return Vec4[F]{v[0] + w[0], v[1] + w[1], v[2] + w[2], v[3] + w[3]}
}

// Mul returns the lane-wise product v * w.
func (v Vec4[F]) Mul(w Vec4[F]) Vec4[F] {
	return Vec4[F]{v[0] * w[0], v[1] * w[1], v[2] * w[2], v[3] * w[3]}
}

// MulAdd returns v + a*b lane-wise.
func (v Vec4[F]) MulAdd(a, b Vec4[F]) Vec4[F] {
	return v.Add(a.Mul(b))
}

// HAdd adds adjacent lane pairs of v and w: [v0+v1, v2+v3, w0+w1, w2+w3].
func (v Vec4[F]) HAdd(w Vec4[F]) Vec4[F] {
	return Vec4[F]{v[0] + v[1], v[2] + v[3], w[0] + w[1], w[2] + w[3]}
}

// Permute reorders lanes according to p.
func (v Vec4[F]) Permute(p Perm4) Vec4[F] {
	return Vec4[F]{v[p[0]], v[p[1]], v[p[2]], v[p[3]]}
}

// ReduceSum sums all four lanes with two horizontal adds.
func (v Vec4[F]) ReduceSum() F {
	v = v.HAdd(v)
	v = v.HAdd(v)
	return v[0]
}

// Spread duplicates every lane into an adjacent pair across eight lanes:
// [a0 a0 a1 a1 | a2 a2 a3 a3]. Used to apply one real coefficient to an
// interleaved (real, imaginary) pair with a single multiply.
func (v Vec4[F]) Spread() Vec8[F] {
	return Vec8[F]{Lo: v.Permute(DupLow), Hi: v.Permute(DupHigh)}
}

// Vec8 is an 8-lane vector held as two 4-lane halves.
type Vec8[F simdops.Float] struct {
	Lo, Hi Vec4[F]
}

// Load8 loads the first eight elements of s. s must have at least eight elements.
func Load8[F simdops.Float](s []F) Vec8[F] {
	return Vec8[F]{Lo: Load4(s), Hi: Load4(s[Width4:])}
}

// Add returns the lane-wise sum v + w.
func (v Vec8[F]) Add(w Vec8[F]) Vec8[F] {
	return Vec8[F]{Lo: v.Lo.Add(w.Lo), Hi: v.Hi.Add(w.Hi)}
}

// MulAdd returns v + a*b lane-wise.
func (v Vec8[F]) MulAdd(a, b Vec8[F]) Vec8[F] {
	return Vec8[F]{Lo: v.Lo.MulAdd(a.Lo, b.Lo), Hi: v.Hi.MulAdd(a.Hi, b.Hi)}
}

// SwapHalves exchanges the low and high 4-lane halves.
func (v Vec8[F]) SwapHalves() Vec8[F] {
	return Vec8[F]{Lo: v.Hi, Hi: v.Lo}
}

// PermuteHalves applies p to each half independently.
func (v Vec8[F]) PermuteHalves(p Perm4) Vec8[F] {
	return Vec8[F]{Lo: v.Lo.Permute(p), Hi: v.Hi.Permute(p)}
}

// Reverse flips all eight lanes. Lanes cannot be permuted across halves directly,
// so the halves are swapped first and each half is then reversed.
func (v Vec8[F]) Reverse() Vec8[F] {
	return v.SwapHalves().PermuteHalves(Reverse)
}

// ReduceSum reduces each half with two horizontal adds and adds the half results.
func (v Vec8[F]) ReduceSum() F {
	return v.Lo.ReduceSum() + v.Hi.ReduceSum()
}
