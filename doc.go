// Package fircorr computes FIR correlation, the sliding dot-product between a short
// real coefficient set and a longer sample stream, in pure Go.
//
// # Features
//
//   - Real, symmetric (linear-phase) and complex (interleaved real/imaginary) domains
//   - Scalar reference kernels that define the numeric ground truth
//   - Portable 4-lane and 8-lane vector kernels
//   - Symmetric kernels that apply each half-coefficient to the sum of its mirrored
//     taps, halving the multiply count
//   - Two lane layouts for complex samples (single and split accumulators)
//   - Optional acceleration via github.com/tphakala/simd and FFT correlation via gonum
//     for long coefficient sets
//   - float32 and float64 samples
//
// # Quick Start
//
// Let the package pick the kernel for the detected vector width:
//
//	out := make([]float32, num)
//	if err := fircorr.FilterReal(num, len(coeffs), coeffs, in, out); err != nil {
//	    log.Fatal(err)
//	}
//
// Or choose a specific variant:
//
//	err := fircorr.Filter(fircorr.SymmetricVec8, num, len(half), half, in, out)
//
// # Buffer Contracts
//
// For num outputs and numCoeffs coefficients:
//
//   - Real kernels read num+numCoeffs-1 input samples and write num outputs.
//   - Symmetric kernels read num+2*numCoeffs-1 input samples; coeffs is the first
//     half of a palindromic filter of length 2*numCoeffs.
//   - Complex kernels read 2*(num+numCoeffs-1) interleaved values and write 2*num.
//   - Vector kernels require numCoeffs to be a multiple of their width (4 or 8).
//
// Every entry point validates these relationships and returns a wrapped sentinel
// error ([ErrShortBuffer], [ErrCoeffAlignment], ...) instead of touching memory.
// Kernels never allocate and keep no state, and each output index is computed
// independently, so callers may split [0, num) across goroutines.
//
// # Dispatch
//
// [Select] maps a domain and coefficient count to a variant using the vector width
// detected once per process. Setting FIRCORR_WIDTH=4 (or 1) narrows the width.
package fircorr
