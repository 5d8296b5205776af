package gamemath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpDampingSplitsIndependently(t *testing.T) {
	// One 0.1s step decays exactly as much as ten 0.01s steps.
	single := 1 + ExpDamping(4, 0.1)
	split := 1.0
	for i := 0; i < 10; i++ {
		split *= 1 + ExpDamping(4, 0.01)
	}
	assert.InDelta(t, single, split, 1e-12)
	assert.Zero(t, ExpDamping(4, 0))
	assert.Less(t, ExpDamping(4, 0.01), 0.0)
	assert.Greater(t, ExpDamping(4, 0.01), -1.0)
}

func TestSmoothFactor(t *testing.T) {
	assert.Zero(t, SmoothFactor(5, 0))
	assert.Zero(t, SmoothFactor(0, 1))
	f := SmoothFactor(5, 0.01)
	assert.Greater(t, f, 0.0)
	assert.Less(t, f, 1.0)
}

func TestSafeNormalize(t *testing.T) {
	v, ok := SafeNormalize(mgl64.Vec3{})
	assert.False(t, ok)
	assert.Equal(t, mgl64.Vec3{}, v)

	v, ok = SafeNormalize(mgl64.Vec3{3, 0, 4})
	require.True(t, ok)
	assert.InDelta(t, 1.0, v.Len(), 1e-12)
	assert.InDelta(t, 0.6, v.X(), 1e-12)
}

func TestRotateY(t *testing.T) {
	tests := []struct {
		name  string
		in    mgl64.Vec3
		angle float64
		want  mgl64.Vec3
	}{
		{"quarter turn from +Z", mgl64.Vec3{0, 0, 1}, math.Pi / 2, mgl64.Vec3{1, 0, 0}},
		{"quarter turn from +X", mgl64.Vec3{1, 0, 0}, math.Pi / 2, mgl64.Vec3{0, 0, -1}},
		{"half turn", mgl64.Vec3{0, 0, 1}, math.Pi, mgl64.Vec3{0, 0, -1}},
		{"vertical untouched", mgl64.Vec3{0, 2, 0}, 1.3, mgl64.Vec3{0, 2, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RotateY(tt.in, tt.angle)
			assert.True(t, got.ApproxEqualThreshold(tt.want, 1e-9), "got %v want %v", got, tt.want)
		})
	}
}

func TestYawOfMatchesRotation(t *testing.T) {
	dir := RotateY(mgl64.Vec3{0, 0, 1}, 0.7)
	assert.InDelta(t, 0.7, YawOf(dir), 1e-9)
}

func TestDirectionFromYawPitch(t *testing.T) {
	assert.True(t, DirectionFromYawPitch(0, 0).ApproxEqualThreshold(mgl64.Vec3{0, 0, -1}, 1e-9))
	assert.True(t, DirectionFromYawPitch(math.Pi/2, 0).ApproxEqualThreshold(mgl64.Vec3{-1, 0, 0}, 1e-9))
	assert.True(t, DirectionFromYawPitch(0, math.Pi/2).ApproxEqualThreshold(mgl64.Vec3{0, 1, 0}, 1e-9))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1.0, Clamp(3, -1, 1))
	assert.Equal(t, -1.0, Clamp(-3, -1, 1))
	assert.Equal(t, 0.5, Clamp(0.5, -1, 1))
}
