package systems

import (
	"testing"

	"github.com/automoto/capsulerun/components"
	cfg "github.com/automoto/capsulerun/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProjector(v components.ViewData) projector {
	return newProjector(&v, 800, 600, cfg.ViewConfig{FOVDeg: 90, Near: 0.1, Far: 100})
}

func TestProjectorCentersTarget(t *testing.T) {
	p := testProjector(components.ViewData{Position: mgl64.Vec3{0, 1, 0}, Target: mgl64.Vec3{0, 1, -1}})

	x, y, ok := p.point(mgl64.Vec3{0, 1, -5})
	require.True(t, ok)
	assert.InDelta(t, 400, x, 1e-3)
	assert.InDelta(t, 300, y, 1e-3)

	// +X is to the right and +Y is up on screen.
	x, y, ok = p.point(mgl64.Vec3{1, 2, -5})
	require.True(t, ok)
	assert.Greater(t, x, float32(400))
	assert.Less(t, y, float32(300))
}

func TestProjectorDropsPointsBehindEye(t *testing.T) {
	p := testProjector(components.ViewData{Position: mgl64.Vec3{}, Target: mgl64.Vec3{0, 0, -1}})

	_, _, ok := p.point(mgl64.Vec3{0, 0, 3})
	assert.False(t, ok)

	_, _, _, _, ok = p.segment(mgl64.Vec3{0, 0, 1}, mgl64.Vec3{1, 0, 2})
	assert.False(t, ok)
}

func TestProjectorClipsSegmentAtNearPlane(t *testing.T) {
	p := testProjector(components.ViewData{Position: mgl64.Vec3{}, Target: mgl64.Vec3{0, 0, -1}})

	x0, y0, x1, y1, ok := p.segment(mgl64.Vec3{1, 0, 5}, mgl64.Vec3{1, 0, -5})
	require.True(t, ok)
	ex, ey, ok := p.point(mgl64.Vec3{1, 0, -5})
	require.True(t, ok)
	assert.InDelta(t, ex, x1, 1e-3)
	assert.InDelta(t, ey, y1, 1e-3)
	// The clipped end sits on the near plane, far to the right at 90 degrees FOV.
	assert.Greater(t, x0, x1)
	assert.InDelta(t, 300, y0, 1e-3)
}

func TestProjectorLookingStraightDown(t *testing.T) {
	p := testProjector(components.ViewData{Position: mgl64.Vec3{0, 10, 0}, Target: mgl64.Vec3{0, 9, 0}})

	x, y, ok := p.point(mgl64.Vec3{0, 0, 0})
	require.True(t, ok)
	assert.InDelta(t, 400, x, 1e-3)
	assert.InDelta(t, 300, y, 1e-3)
}
