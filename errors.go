package fircorr

import "errors"

// Common errors returned by the checked entry points.
var (
	// ErrUnknownVariant indicates a variant value or name that names no kernel.
	ErrUnknownVariant = errors.New("unknown kernel variant")

	// ErrInvalidCount indicates a negative output count or a coefficient count below one.
	ErrInvalidCount = errors.New("invalid sample count")

	// ErrCoeffAlignment indicates a coefficient count that is not a multiple of the
	// kernel's vector width.
	ErrCoeffAlignment = errors.New("coefficient count not a multiple of vector width")

	// ErrShortBuffer indicates a coefficient, input or output buffer that is too short.
	ErrShortBuffer = errors.New("buffer too short")

	// ErrOverlap indicates an output buffer that overlaps the input or coefficients.
	ErrOverlap = errors.New("output buffer overlaps input")
)
