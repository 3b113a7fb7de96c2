package fircorr

import (
	"runtime"
	"testing"

	"github.com/tphakala/go-fir-correlator/internal/testutil"
)

// BenchmarkFilterSequential benchmarks one call over the whole output range.
func BenchmarkFilterSequential(b *testing.B) {
	benchmarkFilterChunked(b, false)
}

// BenchmarkFilterParallel benchmarks the same work split across GOMAXPROCS goroutines.
func BenchmarkFilterParallel(b *testing.B) {
	benchmarkFilterChunked(b, true)
}

func benchmarkFilterChunked(b *testing.B, parallel bool) {
	b.Helper()

	const (
		num       = 48000 // 1 second at 48 kHz
		numCoeffs = 128
	)

	rng := testutil.NewRand(3)
	coeffs := testutil.RandomSlice[float32](rng, numCoeffs)
	in := testutil.RandomSlice[float32](rng, num+numCoeffs-1)
	out := make([]float32, num)
	v := Select(DomainReal, numCoeffs)

	chunk := num
	if parallel {
		chunk = (num + runtime.GOMAXPROCS(0) - 1) / runtime.GOMAXPROCS(0)
	}

	b.SetBytes(num * 4)
	b.ReportAllocs()

	for b.Loop() {
		if err := filterChunked(v, num, numCoeffs, chunk, coeffs, in, out); err != nil {
			b.Fatalf("Filter failed: %v", err)
		}
	}
}
