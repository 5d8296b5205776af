// Package collision provides the capsule collider and the static triangle
// world it is resolved against. It has no dependencies on ebiten or donburi.
package collision

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Capsule is a line segment swept by a sphere of Radius.
type Capsule struct {
	Start  mgl64.Vec3
	End    mgl64.Vec3
	Radius float64
}

// NewCapsule returns a capsule between start and end.
func NewCapsule(start, end mgl64.Vec3, radius float64) *Capsule {
	return &Capsule{Start: start, End: end, Radius: radius}
}

// Set replaces the segment and radius in place.
func (c *Capsule) Set(start, end mgl64.Vec3, radius float64) {
	c.Start = start
	c.End = end
	c.Radius = radius
}

// Clone returns an independent copy.
func (c *Capsule) Clone() *Capsule {
	cp := *c
	return &cp
}

// Translate moves both segment endpoints by delta.
func (c *Capsule) Translate(delta mgl64.Vec3) {
	c.Start = c.Start.Add(delta)
	c.End = c.End.Add(delta)
}

// Center returns the midpoint of the segment.
func (c *Capsule) Center() mgl64.Vec3 {
	return c.Start.Add(c.End).Mul(0.5)
}

// Bottom returns the lowest point of the swept volume below Start.
func (c *Capsule) Bottom() mgl64.Vec3 {
	return c.Start.Sub(mgl64.Vec3{0, c.Radius, 0})
}

// Bounds returns the axis-aligned box enclosing the capsule.
func (c *Capsule) Bounds() AABB {
	return AABB{
		Min: mgl64.Vec3{
			math.Min(c.Start.X(), c.End.X()) - c.Radius,
			math.Min(c.Start.Y(), c.End.Y()) - c.Radius,
			math.Min(c.Start.Z(), c.End.Z()) - c.Radius,
		},
		Max: mgl64.Vec3{
			math.Max(c.Start.X(), c.End.X()) + c.Radius,
			math.Max(c.Start.Y(), c.End.Y()) + c.Radius,
			math.Max(c.Start.Z(), c.End.Z()) + c.Radius,
		},
	}
}

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// Intersects reports whether two boxes overlap (touching counts).
func (b AABB) Intersects(o AABB) bool {
	return b.Min.X() <= o.Max.X() && b.Max.X() >= o.Min.X() &&
		b.Min.Y() <= o.Max.Y() && b.Max.Y() >= o.Min.Y() &&
		b.Min.Z() <= o.Max.Z() && b.Max.Z() >= o.Min.Z()
}

// Union returns the smallest box containing both.
func (b AABB) Union(o AABB) AABB {
	return AABB{
		Min: mgl64.Vec3{math.Min(b.Min.X(), o.Min.X()), math.Min(b.Min.Y(), o.Min.Y()), math.Min(b.Min.Z(), o.Min.Z())},
		Max: mgl64.Vec3{math.Max(b.Max.X(), o.Max.X()), math.Max(b.Max.Y(), o.Max.Y()), math.Max(b.Max.Z(), o.Max.Z())},
	}
}

// Contact is the single aggregated result of a capsule query: the direction
// that pushes the capsule out of the geometry and how far it must move.
type Contact struct {
	Normal mgl64.Vec3
	Depth  float64
}

// Geometry is the static-world query consumed by the movement resolver.
type Geometry interface {
	Intersect(c *Capsule) (Contact, bool)
}
