package fircorr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVariant_RoundTrip(t *testing.T) {
	for _, v := range Variants() {
		t.Run(v.String(), func(t *testing.T) {
			got, err := ParseVariant(v.String())
			require.NoError(t, err)
			assert.Equal(t, v, got)
		})
	}
}

func TestParseVariant_Normalizes(t *testing.T) {
	got, err := ParseVariant("  Complex-Vec4-Split ")
	require.NoError(t, err)
	assert.Equal(t, ComplexVec4Split, got)
}

func TestParseVariant_Unknown(t *testing.T) {
	_, err := ParseVariant("real-vec16")
	assert.ErrorIs(t, err, ErrUnknownVariant)
}

func TestVariant_Properties(t *testing.T) {
	tests := []struct {
		variant Variant
		domain  Domain
		width   int
	}{
		{RealScalar, DomainReal, 1},
		{RealVec4, DomainReal, 4},
		{RealVec8, DomainReal, 8},
		{RealAccel, DomainReal, 1},
		{SymmetricScalar, DomainSymmetric, 1},
		{SymmetricVec4, DomainSymmetric, 4},
		{SymmetricVec8, DomainSymmetric, 8},
		{ComplexScalar, DomainComplex, 1},
		{ComplexVec4, DomainComplex, 4},
		{ComplexVec4Split, DomainComplex, 4},
		{ComplexVec8, DomainComplex, 8},
	}
	require.Len(t, tests, len(Variants()))
	for _, tt := range tests {
		t.Run(tt.variant.String(), func(t *testing.T) {
			assert.True(t, tt.variant.Valid())
			assert.Equal(t, tt.domain, tt.variant.Domain())
			assert.Equal(t, tt.width, tt.variant.Width())
		})
	}
}

func TestVariant_Invalid(t *testing.T) {
	for _, v := range []Variant{-1, numVariants, 42} {
		assert.False(t, v.Valid())
		require.NotPanics(t, func() {
			assert.Equal(t, DomainReal, v.Domain())
			assert.Equal(t, 1, v.Width())
			assert.Equal(t, 5, v.InputLen(2, 4))
			assert.Equal(t, 2, v.OutputLen(2))
		})
	}
	assert.Equal(t, "Variant(42)", Variant(42).String())
	assert.Equal(t, "unknown", Domain(9).String())
}
