package collision

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// parallelEpsilon guards the closest-point solve for nearly parallel segments.
const parallelEpsilon = 1e-10

// Triangle is a one-sided triangle. Counter-clockwise winding (seen from the
// front) gives the outward normal.
type Triangle struct {
	A, B, C mgl64.Vec3

	normal   mgl64.Vec3
	constant float64
}

// NewTriangle precomputes the plane of a, b, c. It returns false for
// degenerate (zero area) input.
func NewTriangle(a, b, c mgl64.Vec3) (Triangle, bool) {
	n := c.Sub(b).Cross(a.Sub(b))
	l := n.Len()
	if l < 1e-12 {
		return Triangle{}, false
	}
	n = n.Mul(1 / l)
	return Triangle{A: a, B: b, C: c, normal: n, constant: -n.Dot(a)}, true
}

// Normal returns the unit plane normal.
func (t Triangle) Normal() mgl64.Vec3 {
	return t.normal
}

// DistanceToPoint returns the signed distance from the triangle's plane.
func (t Triangle) DistanceToPoint(p mgl64.Vec3) float64 {
	return t.normal.Dot(p) + t.constant
}

// Bounds returns the triangle's bounding box.
func (t Triangle) Bounds() AABB {
	return AABB{
		Min: mgl64.Vec3{
			math.Min(t.A.X(), math.Min(t.B.X(), t.C.X())),
			math.Min(t.A.Y(), math.Min(t.B.Y(), t.C.Y())),
			math.Min(t.A.Z(), math.Min(t.B.Z(), t.C.Z())),
		},
		Max: mgl64.Vec3{
			math.Max(t.A.X(), math.Max(t.B.X(), t.C.X())),
			math.Max(t.A.Y(), math.Max(t.B.Y(), t.C.Y())),
			math.Max(t.A.Z(), math.Max(t.B.Z(), t.C.Z())),
		},
	}
}

// ContainsPoint reports whether p, projected onto the triangle's plane, lies
// inside the triangle.
func (t Triangle) ContainsPoint(p mgl64.Vec3) bool {
	v0 := t.C.Sub(t.A)
	v1 := t.B.Sub(t.A)
	v2 := p.Sub(t.A)

	dot00 := v0.Dot(v0)
	dot01 := v0.Dot(v1)
	dot02 := v0.Dot(v2)
	dot11 := v1.Dot(v1)
	dot12 := v1.Dot(v2)

	denom := dot00*dot11 - dot01*dot01
	if denom == 0 {
		return false
	}
	inv := 1 / denom
	u := (dot11*dot02 - dot01*dot12) * inv
	v := (dot00*dot12 - dot01*dot02) * inv
	return u >= 0 && v >= 0 && u+v <= 1
}

// intersectCapsule tests one triangle against a capsule. The returned contact
// normal points from the triangle toward the capsule.
func (t Triangle) intersectCapsule(c *Capsule) (Contact, bool) {
	d1 := t.DistanceToPoint(c.Start) - c.Radius
	d2 := t.DistanceToPoint(c.End) - c.Radius

	if (d1 > 0 && d2 > 0) || (d1 < -c.Radius && d2 < -c.Radius) {
		return Contact{}, false
	}

	delta := math.Abs(d1 / (math.Abs(d1) + math.Abs(d2)))
	if math.IsNaN(delta) {
		delta = 0
	}
	p := c.Start.Add(c.End.Sub(c.Start).Mul(delta))
	if t.ContainsPoint(p) {
		return Contact{Normal: t.normal, Depth: math.Abs(math.Min(d1, d2))}, true
	}

	r2 := c.Radius * c.Radius
	edges := [3][2]mgl64.Vec3{{t.A, t.B}, {t.B, t.C}, {t.C, t.A}}
	for _, e := range edges {
		p1, p2 := closestSegmentPoints(c.Start, c.End, e[0], e[1])
		diff := p1.Sub(p2)
		if diff.Dot(diff) < r2 {
			dist := diff.Len()
			n := mgl64.Vec3{}
			if dist > 0 {
				n = diff.Mul(1 / dist)
			}
			return Contact{Normal: n, Depth: c.Radius - dist}, true
		}
	}
	return Contact{}, false
}

// closestSegmentPoints returns the pair of closest points between segment
// (s1, e1) and segment (s2, e2).
func closestSegmentPoints(s1, e1, s2, e2 mgl64.Vec3) (mgl64.Vec3, mgl64.Vec3) {
	r := e1.Sub(s1)
	s := e2.Sub(s2)
	w := s2.Sub(s1)

	a := r.Dot(s)
	b := r.Dot(r)
	c := s.Dot(s)
	d := s.Dot(w)
	e := r.Dot(w)

	var t1, t2 float64
	divisor := b*c - a*a

	if math.Abs(divisor) < parallelEpsilon {
		d1 := -d / c
		d2 := (a - d) / c
		if math.Abs(d1-0.5) < math.Abs(d2-0.5) {
			t1, t2 = 0, d1
		} else {
			t1, t2 = 1, d2
		}
	} else {
		t1 = (d*a + e*c) / divisor
		t2 = (t1*a - d) / c
	}

	t1 = math.Max(0, math.Min(1, t1))
	t2 = math.Max(0, math.Min(1, t2))

	return s1.Add(r.Mul(t1)), s2.Add(s.Mul(t2))
}
