package design

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestBesselI0(t *testing.T) {
	tests := []struct {
		x    float64
		want float64
	}{
		{0, 1},
		{1, 1.2660658777520082},
		{-1, 1.2660658777520082},
		{5, 27.239871823604442},
		{10, 2815.716628466254},
	}
	for _, tt := range tests {
		got := BesselI0(tt.x)
		assert.InEpsilon(t, tt.want, got, 1e-6, "I0(%g)", tt.x)
	}
}

func TestKaiserBeta(t *testing.T) {
	assert.Zero(t, KaiserBeta(20))
	assert.InDelta(t, 0.1102*(80-8.7), KaiserBeta(80), 1e-12)
	assert.Greater(t, KaiserBeta(40), 0.0)
}

func TestKaiserWindow(t *testing.T) {
	assert.Empty(t, KaiserWindow(0, 5))
	assert.Equal(t, []float64{1}, KaiserWindow(1, 5))

	w := KaiserWindow(31, 8)
	require.Len(t, w, 31)
	assert.InDelta(t, 1.0, w[15], 1e-12)
	for i := range w {
		assert.InDelta(t, w[i], w[30-i], 1e-12)
	}
}

func TestLowpass(t *testing.T) {
	h, err := Lowpass(64, 0.1, 80)
	require.NoError(t, err)
	require.Len(t, h, 64)

	assert.InDelta(t, 1.0, floats.Sum(h), 1e-12)
	for i := range h {
		assert.InDelta(t, h[i], h[63-i], 1e-12)
	}

	assert.Less(t, StopbandPeakDB(h, 1024, 0.2), -60.0)
}

func TestLowpass_InvalidParams(t *testing.T) {
	tests := []struct {
		name        string
		taps        int
		cutoff, att float64
	}{
		{"too_short", 1, 0.1, 60},
		{"too_long", maxTaps + 1, 0.1, 60},
		{"zero_cutoff", 16, 0, 60},
		{"nyquist_cutoff", 16, 0.5, 60},
		{"negative_attenuation", 16, 0.1, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Lowpass(tt.taps, tt.cutoff, tt.att)
			assert.ErrorIs(t, err, ErrInvalidParams)
		})
	}
}

func TestHalf(t *testing.T) {
	half, err := Half([]float64{1, 2, 2, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, half)

	_, err = Half([]float64{1, 2, 1})
	require.ErrorIs(t, err, ErrInvalidParams)

	_, err = Half([]float64{1, 2, 3, 4})
	require.ErrorIs(t, err, ErrInvalidParams)
}

func TestMagnitudeDB_DCGain(t *testing.T) {
	db := MagnitudeDB([]float64{0.25, 0.25, 0.25, 0.25}, 16)
	require.Len(t, db, 9)
	assert.InDelta(t, 0.0, db[0], 1e-9)
	assert.Less(t, db[4], -100.0, "moving average has a null at fs/4")
}
