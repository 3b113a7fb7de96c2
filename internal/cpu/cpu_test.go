package cpu

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeatures_VectorWidth(t *testing.T) {
	tests := []struct {
		name     string
		features Features
		want     int
	}{
		{"none", Features{}, WidthScalar},
		{"sse2", Features{HasSSE2: true}, Width4},
		{"neon", Features{HasNEON: true}, Width4},
		{"avx", Features{HasSSE2: true, HasAVX: true}, Width8},
		{"avx2", Features{HasSSE2: true, HasAVX: true, HasAVX2: true}, Width8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.features.VectorWidth())
		})
	}
}

func TestParseWidth(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"1", WidthScalar, true},
		{"scalar", WidthScalar, true},
		{" Generic ", WidthScalar, true},
		{"4", Width4, true},
		{"8", Width8, true},
		{"16", 0, false},
		{"avx", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseWidth(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApplyOverride(t *testing.T) {
	assert.Equal(t, Width8, applyOverride(Width8, ""))
	assert.Equal(t, Width4, applyOverride(Width8, "4"))
	assert.Equal(t, WidthScalar, applyOverride(Width4, "scalar"))
	assert.Equal(t, Width4, applyOverride(Width4, "8"), "override cannot exceed hardware")
	assert.Equal(t, Width4, applyOverride(Width4, "bogus"))
}

func TestDetectFeatures_Architecture(t *testing.T) {
	f := DetectFeatures()
	assert.Equal(t, runtime.GOARCH, f.Architecture)
	if runtime.GOARCH == "amd64" {
		assert.True(t, f.HasSSE2, "SSE2 is baseline on amd64")
	}
}

func TestSetForcedWidth(t *testing.T) {
	t.Cleanup(ResetForcedWidth)

	SetForcedWidth(Width4)
	assert.Equal(t, Width4, VectorWidth())

	ResetForcedWidth()
	assert.Contains(t, []int{WidthScalar, Width4, Width8}, VectorWidth())
}
