package simdops

import (
	"testing"

	"github.com/tphakala/simd/f32"
	"github.com/tphakala/simd/f64"
)

// BenchmarkDirectF64ConvolveValid measures a direct library call.
func BenchmarkDirectF64ConvolveValid(b *testing.B) {
	signal := make([]float64, 128)
	kernel := make([]float64, 20)
	dst := make([]float64, 109) // 128 - 20 + 1
	for i := range signal {
		signal[i] = float64(i) * 0.01
	}
	for i := range kernel {
		kernel[i] = float64(i) * 0.05
	}

	b.ReportAllocs()
	for b.Loop() {
		f64.ConvolveValid(dst, signal, kernel)
	}
}

// BenchmarkIndirectF64ConvolveValid measures the same call through the Ops table.
func BenchmarkIndirectF64ConvolveValid(b *testing.B) {
	ops := For[float64]()
	signal := make([]float64, 128)
	kernel := make([]float64, 20)
	dst := make([]float64, 109)
	for i := range signal {
		signal[i] = float64(i) * 0.01
	}
	for i := range kernel {
		kernel[i] = float64(i) * 0.05
	}

	b.ReportAllocs()
	for b.Loop() {
		ops.ConvolveValid(dst, signal, kernel)
	}
}

func BenchmarkDirectF32ConvolveValid(b *testing.B) {
	signal := make([]float32, 128)
	kernel := make([]float32, 20)
	dst := make([]float32, 109)
	for i := range signal {
		signal[i] = float32(i) * 0.01
	}
	for i := range kernel {
		kernel[i] = float32(i) * 0.05
	}

	b.ReportAllocs()
	for b.Loop() {
		f32.ConvolveValid(dst, signal, kernel)
	}
}

func BenchmarkIndirectF32ConvolveValid(b *testing.B) {
	ops := For[float32]()
	signal := make([]float32, 128)
	kernel := make([]float32, 20)
	dst := make([]float32, 109)
	for i := range signal {
		signal[i] = float32(i) * 0.01
	}
	for i := range kernel {
		kernel[i] = float32(i) * 0.05
	}

	b.ReportAllocs()
	for b.Loop() {
		ops.ConvolveValid(dst, signal, kernel)
	}
}
