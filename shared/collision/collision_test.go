package collision

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapsuleTranslateAndCenter(t *testing.T) {
	c := NewCapsule(mgl64.Vec3{0, 0.35, 0}, mgl64.Vec3{0, 1, 0}, 0.35)
	c.Translate(mgl64.Vec3{1, 2, 3})

	assert.True(t, c.Start.ApproxEqual(mgl64.Vec3{1, 2.35, 3}))
	assert.True(t, c.End.ApproxEqual(mgl64.Vec3{1, 3, 3}))
	assert.True(t, c.Center().ApproxEqual(mgl64.Vec3{1, 2.675, 3}))

	b := c.Bounds()
	assert.InDelta(t, 0.65, b.Min.X(), 1e-12)
	assert.InDelta(t, 2.0, b.Min.Y(), 1e-12)
	assert.InDelta(t, 3.35, b.Max.Y(), 1e-12)
}

func TestCapsuleCloneIsIndependent(t *testing.T) {
	c := NewCapsule(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 1, 0}, 0.5)
	cp := c.Clone()
	cp.Translate(mgl64.Vec3{5, 0, 0})

	assert.Equal(t, 0.0, c.Start.X())
	assert.Equal(t, 5.0, cp.Start.X())
}

func TestTriangleWindingGivesNormal(t *testing.T) {
	tri, ok := NewTriangle(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 1, 0})
	require.True(t, ok)
	assert.True(t, tri.Normal().ApproxEqual(mgl64.Vec3{0, 0, 1}))
	assert.InDelta(t, 2.0, tri.DistanceToPoint(mgl64.Vec3{0.2, 0.2, 2}), 1e-12)

	_, ok = NewTriangle(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{2, 0, 0})
	assert.False(t, ok, "collinear points")
}

func TestTriangleContainsPoint(t *testing.T) {
	tri, ok := NewTriangle(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 1, 0})
	require.True(t, ok)

	tests := []struct {
		name string
		p    mgl64.Vec3
		want bool
	}{
		{"inside", mgl64.Vec3{0.2, 0.2, 0}, true},
		{"inside above plane", mgl64.Vec3{0.2, 0.2, 3}, true},
		{"vertex", mgl64.Vec3{0, 0, 0}, true},
		{"outside hypotenuse", mgl64.Vec3{0.6, 0.6, 0}, false},
		{"negative x", mgl64.Vec3{-0.1, 0.5, 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tri.ContainsPoint(tt.p))
		})
	}
}

func TestClosestSegmentPoints(t *testing.T) {
	t.Run("crossing", func(t *testing.T) {
		p1, p2 := closestSegmentPoints(
			mgl64.Vec3{-1, 0, 0}, mgl64.Vec3{1, 0, 0},
			mgl64.Vec3{0, 1, -1}, mgl64.Vec3{0, 1, 1},
		)
		assert.True(t, p1.ApproxEqual(mgl64.Vec3{0, 0, 0}))
		assert.True(t, p2.ApproxEqual(mgl64.Vec3{0, 1, 0}))
	})

	t.Run("clamped to endpoints", func(t *testing.T) {
		p1, p2 := closestSegmentPoints(
			mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0},
			mgl64.Vec3{3, 1, 0}, mgl64.Vec3{3, 2, 0},
		)
		assert.True(t, p1.ApproxEqual(mgl64.Vec3{1, 0, 0}))
		assert.True(t, p2.ApproxEqual(mgl64.Vec3{3, 1, 0}))
	})

	t.Run("parallel", func(t *testing.T) {
		p1, p2 := closestSegmentPoints(
			mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 1, 0},
			mgl64.Vec3{1, 0, 0}, mgl64.Vec3{1, 1, 0},
		)
		assert.InDelta(t, 1.0, p2.Sub(p1).Len(), 1e-12)
		assert.False(t, math.IsNaN(p1.X()+p1.Y()+p2.X()+p2.Y()))
	})
}

func floorWorld() *World {
	w := NewWorld(2)
	w.AddBox(Box{Min: mgl64.Vec3{-5, -1, -5}, Max: mgl64.Vec3{5, 0, 5}})
	return w
}

func TestWorldFloorContact(t *testing.T) {
	w := floorWorld()
	c := NewCapsule(mgl64.Vec3{1, 0.3, -2}, mgl64.Vec3{1, 1, -2}, 0.35)

	contact, ok := w.Intersect(c)
	require.True(t, ok)
	assert.InDelta(t, 0.0, contact.Normal.X(), 1e-9)
	assert.InDelta(t, 1.0, contact.Normal.Y(), 1e-9)
	assert.InDelta(t, 0.0, contact.Normal.Z(), 1e-9)
	assert.InDelta(t, 0.05, contact.Depth, 1e-9)
}

func TestWorldNoContact(t *testing.T) {
	w := floorWorld()

	_, ok := w.Intersect(NewCapsule(mgl64.Vec3{0, 3, 0}, mgl64.Vec3{0, 4, 0}, 0.35))
	assert.False(t, ok, "above the floor")

	_, ok = w.Intersect(NewCapsule(mgl64.Vec3{500, 0, 500}, mgl64.Vec3{500, 1, 500}, 0.35))
	assert.False(t, ok, "outside the broad phase")
}

func TestWorldWallContact(t *testing.T) {
	w := NewWorld(2)
	w.AddBox(Box{Min: mgl64.Vec3{1, 0, -5}, Max: mgl64.Vec3{2, 3, 5}})
	c := NewCapsule(mgl64.Vec3{0.8, 1, 0.5}, mgl64.Vec3{0.8, 2, 0.5}, 0.35)

	contact, ok := w.Intersect(c)
	require.True(t, ok)
	assert.InDelta(t, -1.0, contact.Normal.X(), 1e-9)
	assert.InDelta(t, 0.0, contact.Normal.Y(), 1e-9)
	assert.InDelta(t, 0.15, contact.Depth, 1e-9)
}

func TestWorldEdgeContactResolves(t *testing.T) {
	w := NewWorld(2)
	w.AddBox(Box{Min: mgl64.Vec3{0, 0, -5}, Max: mgl64.Vec3{2, 1, 5}})
	c := NewCapsule(mgl64.Vec3{-0.2, 1.2, 0.3}, mgl64.Vec3{-0.2, 2, 0.3}, 0.35)

	contact, ok := w.Intersect(c)
	require.True(t, ok)
	assert.Less(t, contact.Normal.X(), 0.0)
	assert.Greater(t, contact.Normal.Y(), 0.0)
	assert.Greater(t, contact.Depth, 0.0)
	assert.Less(t, contact.Depth, c.Radius)

	c.Translate(contact.Normal.Mul(contact.Depth))
	after, ok := w.Intersect(c)
	if ok {
		assert.Less(t, after.Depth, 1e-6)
	}
}

func TestRampTopSlopes(t *testing.T) {
	w := NewWorld(2)
	w.AddRamp(Ramp{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{4, 2, 2}, Axis: RampAlongX, Rise: 2})

	var found bool
	for _, tri := range w.Triangles() {
		n := tri.Normal()
		if n.Y() > 0 && n.Y() < 1 {
			found = true
			assert.Less(t, n.X(), 0.0, "top faces back toward the low end")
			assert.InDelta(t, 0.0, n.Z(), 1e-12)
		}
	}
	assert.True(t, found)

	// The low end sits on the floor: its side face collapses and the two
	// side walls along the slope are single triangles.
	assert.Len(t, w.Triangles(), 8)
}

func TestWorldEdgesAndBounds(t *testing.T) {
	w := floorWorld()
	assert.Len(t, w.Edges(), 12)
	assert.Len(t, w.Triangles(), 12)

	b := w.Bounds()
	assert.True(t, b.Min.ApproxEqual(mgl64.Vec3{-5, -1, -5}))
	assert.True(t, b.Max.ApproxEqual(mgl64.Vec3{5, 0, 5}))
	assert.NotNil(t, w.Space())
}

func TestWorldBroadPhaseFiltersFarGeometry(t *testing.T) {
	w := NewWorld(1)
	w.AddBox(Box{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 1, 1}})
	w.AddBox(Box{Min: mgl64.Vec3{20, 0, 20}, Max: mgl64.Vec3{21, 1, 21}})

	got := w.candidates(AABB{Min: mgl64.Vec3{-0.5, 0, -0.5}, Max: mgl64.Vec3{0.5, 1, 0.5}})
	require.NotEmpty(t, got)
	for _, i := range got {
		assert.Less(t, i, 12, "only the near box is a candidate")
	}
}

func TestEmptyWorld(t *testing.T) {
	w := NewWorld(2)
	_, ok := w.Intersect(NewCapsule(mgl64.Vec3{}, mgl64.Vec3{0, 1, 0}, 0.35))
	assert.False(t, ok)
	assert.Nil(t, w.Space())
}
