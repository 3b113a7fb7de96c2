package vec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec4_Arithmetic(t *testing.T) {
	a := Load4([]float32{1, 2, 3, 4, 99})
	b := Vec4[float32]{10, 20, 30, 40}

	assert.Equal(t, Vec4[float32]{11, 22, 33, 44}, a.Add(b))
	assert.Equal(t, Vec4[float32]{10, 40, 90, 160}, a.Mul(b))
	assert.Equal(t, Vec4[float32]{11, 42, 93, 164}, a.MulAdd(a, b))
}

func TestVec4_HAdd(t *testing.T) {
	a := Vec4[float64]{1, 2, 3, 4}
	b := Vec4[float64]{10, 20, 30, 40}

	assert.Equal(t, Vec4[float64]{3, 7, 30, 70}, a.HAdd(b))
	assert.InDelta(t, 10.0, a.ReduceSum(), 0)
}

func TestVec4_Permute(t *testing.T) {
	v := Vec4[float64]{0, 1, 2, 3}

	tests := []struct {
		name string
		perm Perm4
		want Vec4[float64]
	}{
		{"reverse", Reverse, Vec4[float64]{3, 2, 1, 0}},
		{"even_odd", EvenOdd, Vec4[float64]{0, 2, 1, 3}},
		{"dup_low", DupLow, Vec4[float64]{0, 0, 1, 1}},
		{"dup_high", DupHigh, Vec4[float64]{2, 2, 3, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v.Permute(tt.perm))
		})
	}
}

func TestVec4_Spread(t *testing.T) {
	v := Vec4[float32]{1, 2, 3, 4}
	got := v.Spread()

	assert.Equal(t, Vec4[float32]{1, 1, 2, 2}, got.Lo)
	assert.Equal(t, Vec4[float32]{3, 3, 4, 4}, got.Hi)
}

func TestVec8_Reverse(t *testing.T) {
	v := Load8([]float64{0, 1, 2, 3, 4, 5, 6, 7})

	assert.Equal(t, Load8([]float64{7, 6, 5, 4, 3, 2, 1, 0}), v.Reverse())
}

func TestVec8_SwapAndPermuteHalves(t *testing.T) {
	v := Load8([]float64{0, 1, 2, 3, 4, 5, 6, 7})

	assert.Equal(t, Vec4[float64]{4, 5, 6, 7}, v.SwapHalves().Lo)
	assert.Equal(t, Vec4[float64]{0, 1, 2, 3}, v.SwapHalves().Hi)

	p := v.PermuteHalves(EvenOdd)
	assert.Equal(t, Vec4[float64]{0, 2, 1, 3}, p.Lo)
	assert.Equal(t, Vec4[float64]{4, 6, 5, 7}, p.Hi)
}

func TestVec8_ArithmeticAndReduce(t *testing.T) {
	a := Load8([]float64{1, 2, 3, 4, 5, 6, 7, 8})
	b := Load8([]float64{1, 1, 1, 1, 2, 2, 2, 2})

	var acc Vec8[float64]
	acc = acc.MulAdd(a, b)
	assert.InDelta(t, 10.0+52.0, acc.ReduceSum(), 0)
	assert.InDelta(t, 36.0+12.0, a.Add(b).ReduceSum(), 0)
}
