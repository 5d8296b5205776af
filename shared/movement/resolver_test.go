package movement

import (
	"math"
	"testing"

	"github.com/automoto/capsulerun/shared/collision"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGeometry struct {
	contact collision.Contact
	hit     bool
	calls   int
}

func (g *stubGeometry) Intersect(*collision.Capsule) (collision.Contact, bool) {
	g.calls++
	return g.contact, g.hit
}

func TestResolveNoContact(t *testing.T) {
	b := newTestBody(mgl64.Vec3{1, -2, 3}, true)
	start := b.Collider.Start

	_, hit := Resolve(b, &stubGeometry{}, 1e-10)
	assert.False(t, hit)
	assert.False(t, b.OnFloor)
	assert.Equal(t, mgl64.Vec3{1, -2, 3}, b.Velocity)
	assert.Equal(t, start, b.Collider.Start)
}

func TestResolveFloorContactKeepsVelocity(t *testing.T) {
	normal := mgl64.Vec3{0.3, 0.9, 0}.Normalize()
	geo := &stubGeometry{hit: true, contact: collision.Contact{Normal: normal, Depth: 0.02}}
	b := newTestBody(mgl64.Vec3{4, -6, 1}, false)
	start := b.Collider.Start

	Resolve(b, geo, 1e-10)
	assert.True(t, b.OnFloor)
	assert.Equal(t, mgl64.Vec3{4, -6, 1}, b.Velocity)
	assert.True(t, b.Collider.Start.ApproxEqual(start.Add(normal.Mul(0.02))))
}

func TestResolveWallContactSlides(t *testing.T) {
	tests := []struct {
		name   string
		normal mgl64.Vec3
	}{
		{"wall", mgl64.Vec3{-1, 0, 0}},
		{"ceiling", mgl64.Vec3{0, -1, 0}},
		{"overhang", mgl64.Vec3{0.6, -0.8, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			depth := 0.15
			geo := &stubGeometry{hit: true, contact: collision.Contact{Normal: tt.normal, Depth: depth}}
			b := newTestBody(mgl64.Vec3{5, 3, -2}, true)
			start, end := b.Collider.Start, b.Collider.End

			contact, hit := Resolve(b, geo, 1e-10)
			require.True(t, hit)
			assert.Equal(t, tt.normal, contact.Normal)
			assert.False(t, b.OnFloor)
			assert.InDelta(t, 0, b.Velocity.Dot(tt.normal), 1e-12)
			assert.True(t, b.Collider.Start.ApproxEqual(start.Add(tt.normal.Mul(depth))))
			assert.True(t, b.Collider.End.ApproxEqual(end.Add(tt.normal.Mul(depth))))
		})
	}
}

func TestResolveNoiseFloor(t *testing.T) {
	tests := []struct {
		name  string
		depth float64
		moved bool
	}{
		{"below floor", 1e-12, false},
		{"at floor", 1e-10, true},
		{"above floor", 1e-3, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			geo := &stubGeometry{hit: true, contact: collision.Contact{Normal: mgl64.Vec3{0, 1, 0}, Depth: tt.depth}}
			b := newTestBody(mgl64.Vec3{}, false)
			start := b.Collider.Start

			Resolve(b, geo, 1e-10)
			assert.True(t, b.OnFloor)
			if tt.moved {
				assert.Equal(t, start.Add(mgl64.Vec3{0, tt.depth, 0}), b.Collider.Start)
			} else {
				assert.Equal(t, start, b.Collider.Start)
			}
		})
	}
}

func TestResolveAgainstWorldFloor(t *testing.T) {
	w := collision.NewWorld(2)
	w.AddBox(collision.Box{Min: mgl64.Vec3{-10, -1, -10}, Max: mgl64.Vec3{10, 0, 10}})
	b := NewBody(collision.Capsule{Start: mgl64.Vec3{2, 0.3, -3}, End: mgl64.Vec3{2, 0.95, -3}, Radius: 0.35})

	_, hit := Resolve(b, w, 1e-10)
	require.True(t, hit)
	assert.True(t, b.OnFloor)
	assert.InDelta(t, 0.35, b.Collider.Start.Y(), 1e-9)
	assert.False(t, math.IsNaN(b.Velocity.Len()))
}
