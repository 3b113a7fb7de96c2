package main

import (
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"time"

	fircorr "github.com/tphakala/go-fir-correlator"
	"github.com/tphakala/go-fir-correlator/internal/design"
	"github.com/tphakala/go-fir-correlator/internal/simdops"
	"golang.org/x/sync/errgroup"
)

type runConfig struct {
	variant   fircorr.Variant
	numCoeffs int
	num       int
	iters     int
	workers   int
	seed      uint64
}

type result struct {
	elapsed  time.Duration
	maxError float64
	checksum float64
	accurate bool
}

func (r result) print(w io.Writer, cfg runConfig) {
	perIter := r.elapsed / time.Duration(max(cfg.iters, 1))
	samples := float64(cfg.num) * float64(cfg.iters)
	fmt.Fprintf(w, "Variant:    %s (%d taps, %d workers)\n", cfg.variant, cfg.numCoeffs, cfg.workers)
	fmt.Fprintf(w, "Time:       %v per iteration\n", perIter)
	fmt.Fprintf(w, "Throughput: %.2f Msamples/s\n", samples/r.elapsed.Seconds()/megaSamples)
	fmt.Fprintf(w, "Max error:  %.3g (within tolerance: %v)\n", r.maxError, r.accurate)
	fmt.Fprintf(w, "Checksum:   %.6f\n", r.checksum)
}

// run times cfg.iters calls of cfg.variant and compares the last output to the
// scalar kernel of the same domain.
func run[F fircorr.Float](cfg runConfig) (result, error) {
	if cfg.iters < 1 || cfg.workers < 1 {
		return result{}, fmt.Errorf("iters and workers must be positive, got %d and %d", cfg.iters, cfg.workers)
	}
	v := cfg.variant

	coeffs, err := coefficientsFor[F](v, cfg.numCoeffs)
	if err != nil {
		return result{}, err
	}
	in := generateTestSignal[F](v.InputLen(cfg.num, cfg.numCoeffs), cfg.seed)
	out := make([]F, v.OutputLen(cfg.num))

	start := time.Now()
	for range cfg.iters {
		if err := filterParallel(v, cfg.num, cfg.numCoeffs, cfg.workers, coeffs, in, out); err != nil {
			return result{}, err
		}
	}
	elapsed := time.Since(start)

	want := make([]F, len(out))
	if err := fircorr.Filter(scalarFor(v.Domain()), cfg.num, cfg.numCoeffs, coeffs, in, want); err != nil {
		return result{}, err
	}

	maxErr := maxRelativeError(want, out)
	tol := float64Tolerance
	if _, ok := any(F(0)).(float32); ok {
		tol = float32Tolerance
	}

	return result{
		elapsed:  elapsed,
		maxError: maxErr,
		checksum: float64(simdops.For[F]().Sum(out)),
		accurate: maxErr <= tol,
	}, nil
}

// filterParallel splits [0, num) into one contiguous range per worker.
func filterParallel[F fircorr.Float](v fircorr.Variant, num, numCoeffs, workers int, coeffs, in, out []F) error {
	if workers <= 1 || num < workers {
		return fircorr.Filter(v, num, numCoeffs, coeffs, in, out)
	}

	stride := v.OutputLen(1)
	chunk := (num + workers - 1) / workers

	var g errgroup.Group
	for lo := 0; lo < num; lo += chunk {
		n := min(chunk, num-lo)
		g.Go(func() error {
			return fircorr.Filter(v, n, numCoeffs, coeffs, in[lo*stride:], out[lo*stride:])
		})
	}
	return g.Wait()
}

func scalarFor(d fircorr.Domain) fircorr.Variant {
	switch d {
	case fircorr.DomainSymmetric:
		return fircorr.SymmetricScalar
	case fircorr.DomainComplex:
		return fircorr.ComplexScalar
	default:
		return fircorr.RealScalar
	}
}

// coefficientsFor designs the lowpass the variant consumes. Symmetric variants get
// the first half of a filter twice as long.
func coefficientsFor[F fircorr.Float](v fircorr.Variant, numCoeffs int) ([]F, error) {
	taps := numCoeffs
	if v.Domain() == fircorr.DomainSymmetric {
		taps *= 2
	}
	h, err := design.Lowpass(taps, cutoffRatio, stopbandAttenuation)
	if err != nil {
		return nil, err
	}
	if v.Domain() == fircorr.DomainSymmetric {
		if h, err = design.Half(h); err != nil {
			return nil, err
		}
	}

	out := make([]F, len(h))
	for i, x := range h {
		out[i] = F(x)
	}
	return out, nil
}

// generateTestSignal returns a 1 kHz tone with a small amount of noise.
func generateTestSignal[F fircorr.Float](n int, seed uint64) []F {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	omega := 2 * math.Pi * testSignalFrequency / testSampleRate

	signal := make([]F, n)
	for i := range signal {
		signal[i] = F(math.Sin(omega*float64(i)) + 0.01*(rng.Float64()*2-1))
	}
	return signal
}

func maxRelativeError[F fircorr.Float](want, got []F) float64 {
	var worst float64
	for i := range want {
		w := float64(want[i])
		worst = max(worst, math.Abs(float64(got[i])-w)/(1+math.Abs(w)))
	}
	return worst
}
