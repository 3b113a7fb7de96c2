// Package simdops provides generic SIMD operations for float32 and float64 types.
// Kernels written once against Ops[F] run on either precision without duplication.
package simdops

import (
	"github.com/tphakala/simd/f32"
	"github.com/tphakala/simd/f64"
)

// Float is the type constraint for supported floating-point types.
type Float interface {
	float32 | float64
}

// Ops provides SIMD-accelerated operations for type F.
// Function pointers allow type-safe generic code while delegating
// to the assembly implementations in github.com/tphakala/simd.
type Ops[F Float] struct {
	// ConvolveValid computes the valid correlation of signal with kernel:
	//   dst[i] = Σ signal[i+j] * kernel[j]
	// for i in [0, len(signal)-len(kernel)].
	ConvolveValid func(dst, signal, kernel []F)

	// Interleave2 interleaves two slices: dst[0]=a[0], dst[1]=b[0], dst[2]=a[1], ...
	Interleave2 func(dst, a, b []F)

	// Sum returns the sum of all elements.
	Sum func(a []F) F

	// Scale multiplies each element by scalar s: dst[i] = a[i] * s
	Scale func(dst, a []F, s F)
}

var (
	ops32 = Ops[float32]{
		ConvolveValid: f32.ConvolveValid,
		Interleave2:   f32.Interleave2,
		Sum:           f32.Sum,
		Scale:         f32.Scale,
	}
	ops64 = Ops[float64]{
		ConvolveValid: f64.ConvolveValid,
		Interleave2:   f64.Interleave2,
		Sum:           f64.Sum,
		Scale:         f64.Scale,
	}
)

// For returns the Ops instance for type F.
// The type switch happens once per caller, not in hot paths.
func For[F Float]() *Ops[F] {
	var zero F
	switch any(zero).(type) {
	case float32:
		ops, ok := any(&ops32).(*Ops[F])
		if !ok {
			panic("simdops: type assertion failed for float32")
		}
		return ops
	case float64:
		ops, ok := any(&ops64).(*Ops[F])
		if !ok {
			panic("simdops: type assertion failed for float64")
		}
		return ops
	default:
		panic("simdops: unsupported float type")
	}
}

// Float32Ops returns the float32 SIMD operations.
func Float32Ops() *Ops[float32] {
	return &ops32
}

// Float64Ops returns the float64 SIMD operations.
func Float64Ops() *Ops[float64] {
	return &ops64
}
