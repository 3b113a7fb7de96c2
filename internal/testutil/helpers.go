// Package testutil provides reusable test helpers for the correlation kernels.
package testutil

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tphakala/go-fir-correlator/internal/simdops"
	"gonum.org/v1/gonum/floats"
)

// Default tolerances. Errors are measured as |got-want| / (1 + |want|), which is
// relative for large outputs and absolute near zero where cancellation dominates.
const (
	Float32Tolerance = 1e-4
	Float64Tolerance = 1e-10
)

// ToleranceFor returns the default tolerance for precision F.
func ToleranceFor[F simdops.Float]() float64 {
	var zero F
	if _, ok := any(zero).(float32); ok {
		return Float32Tolerance
	}
	return Float64Tolerance
}

// NewRand returns a deterministic generator for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// RandomSlice returns n values uniformly distributed in [-1, 1).
func RandomSlice[F simdops.Float](rng *rand.Rand, n int) []F {
	s := make([]F, n)
	for i := range s {
		s[i] = F(rng.Float64()*2 - 1)
	}
	return s
}

// ToFloat64 widens s to float64.
func ToFloat64[F simdops.Float](s []F) []float64 {
	out := make([]float64, len(s))
	for i, v := range s {
		out[i] = float64(v)
	}
	return out
}

// ReferenceReal computes the real correlation in float64 with gonum's dot product.
// It is an independent oracle for every kernel.
func ReferenceReal[F simdops.Float](num int, coeffs, in []F) []float64 {
	c := ToFloat64(coeffs)
	x := ToFloat64(in)
	out := make([]float64, num)
	for i := range num {
		out[i] = floats.Dot(c, x[i:i+len(c)])
	}
	return out
}

// ExpandSymmetric returns the full palindromic filter half ++ reverse(half).
func ExpandSymmetric[F simdops.Float](half []F) []F {
	n := len(half)
	full := make([]F, 2*n)
	copy(full, half)
	for k, c := range half {
		full[2*n-1-k] = c
	}
	return full
}

// Deinterleave splits interleaved complex samples into real and imaginary channels.
func Deinterleave[F simdops.Float](in []F) (re, im []F) {
	n := len(in) / 2
	re = make([]F, n)
	im = make([]F, n)
	for i := range n {
		re[i] = in[2*i]
		im[i] = in[2*i+1]
	}
	return re, im
}

// Interleave joins real and imaginary channels into interleaved complex samples.
func Interleave[F simdops.Float](re, im []F) []F {
	out := make([]F, 2*len(re))
	simdops.For[F]().Interleave2(out, re, im)
	return out
}

// AssertClose verifies got against want element-wise within tolerance.
func AssertClose[F simdops.Float](t *testing.T, want []float64, got []F, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Len(t, got, len(want), msgAndArgs...) {
		return false
	}
	for i := range want {
		g := float64(got[i])
		errNorm := math.Abs(g-want[i]) / (1 + math.Abs(want[i]))
		if errNorm > tolerance || math.IsNaN(g) {
			return assert.Fail(t, "values differ",
				"index %d: got %g, want %g (error %e > %e)", i, g, want[i], errNorm, tolerance)
		}
	}
	return true
}

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf[F simdops.Float](t *testing.T, s []F) bool {
	t.Helper()
	for i, v := range s {
		f := float64(v)
		if math.IsNaN(f) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(f, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}
