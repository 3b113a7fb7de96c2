// Package kernel implements the FIR correlation kernels.
//
// Every kernel computes a sliding dot-product between a real coefficient set and a
// sample stream and shares one shape:
//
//	func(num, numCoeffs int, coeffs, in, out []F)
//
// Kernels are unchecked: they assume the caller validated buffer lengths and the
// coefficient count alignment required by the kernel's vector width. A violated
// precondition panics with an index out of range rather than being reported.
// Kernels never allocate and keep no state between calls, so disjoint output ranges
// may be computed concurrently by slicing in and out.
//
// Real kernels read num+numCoeffs-1 samples and write num outputs. Symmetric kernels
// read num+2*numCoeffs-1 samples. Complex kernels read and write interleaved
// (real, imaginary) pairs, so slice lengths are twice the sample counts.
package kernel
