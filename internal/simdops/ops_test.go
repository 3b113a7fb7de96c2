package simdops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFor_ReturnsPackageTables(t *testing.T) {
	assert.Same(t, Float32Ops(), For[float32]())
	assert.Same(t, Float64Ops(), For[float64]())
}

func TestConvolveValid_IsCorrelation(t *testing.T) {
	// dst[i] = Σ signal[i+j] * kernel[j], kernel is not reversed.
	signal := []float64{1, 2, 3, 4, 5}
	kernel := []float64{1, 10, 100}
	dst := make([]float64, 3)

	For[float64]().ConvolveValid(dst, signal, kernel)

	assert.InDeltaSlice(t, []float64{321, 432, 543}, dst, 1e-12)
}

func TestInterleave2(t *testing.T) {
	a := []float32{1, 3, 5}
	b := []float32{2, 4, 6}
	dst := make([]float32, 6)

	For[float32]().Interleave2(dst, a, b)

	require.Len(t, dst, 6)
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6}, dst)
}

func TestSumAndScale(t *testing.T) {
	ops := For[float64]()
	a := []float64{1, 2, 3, 4}
	dst := make([]float64, len(a))

	ops.Scale(dst, a, 0.5)

	assert.InDeltaSlice(t, []float64{0.5, 1, 1.5, 2}, dst, 1e-12)
	assert.InDelta(t, 5.0, ops.Sum(dst), 1e-12)
}
