package collision

import (
	"math"

	"github.com/automoto/capsulerun/shared/gamemath"
	"github.com/automoto/capsulerun/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

const (
	// spaceScale converts world units into resolv space units. resolv bounds
	// objects on whole units, so world geometry is scaled up before hashing.
	spaceScale = 16.0
	// spacePadding is the empty border around the geometry, in world units.
	spacePadding = 4.0
)

// Box is an axis-aligned solid block.
type Box struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// RampAxis selects the horizontal axis along which a ramp rises.
type RampAxis int

const (
	RampAlongX RampAxis = iota
	RampAlongZ
)

// Ramp is a block whose top surface rises linearly from Max.Y-Rise at the
// low end of Axis to Max.Y at the high end. A negative Rise slopes the other way.
type Ramp struct {
	Min  mgl64.Vec3
	Max  mgl64.Vec3
	Axis RampAxis
	Rise float64
}

// Edge is a line segment of level outline, used for wireframe drawing.
type Edge [2]mgl64.Vec3

// World is static triangle geometry with a resolv spatial hash over the XZ
// plane as broad phase. A World is not safe for concurrent queries.
type World struct {
	triangles []Triangle
	edges     []Edge
	bounds    AABB
	hasBounds bool

	space  *resolv.Space
	probe  *resolv.Object
	origin mgl64.Vec3

	cellSize int
	dirty    bool
}

// NewWorld returns an empty world. cellSize is the broad-phase cell edge in
// world units.
func NewWorld(cellSize float64) *World {
	if cellSize <= 0 {
		cellSize = 2
	}
	return &World{cellSize: int(math.Ceil(cellSize * spaceScale)), dirty: true}
}

// AddTriangle adds one triangle. Degenerate triangles are ignored and
// reported with false.
func (w *World) AddTriangle(a, b, c mgl64.Vec3) bool {
	t, ok := NewTriangle(a, b, c)
	if !ok {
		return false
	}
	w.triangles = append(w.triangles, t)
	w.grow(t.Bounds())
	w.dirty = true
	return true
}

// AddBox adds the twelve triangles of an axis-aligned box.
func (w *World) AddBox(b Box) {
	w.addBlock(blockCorners(b.Min, b.Max, func(int, int) float64 { return b.Max.Y() }))
}

// AddRamp adds a sloped block.
func (w *World) AddRamp(r Ramp) {
	top := func(ix, iz int) float64 {
		i := ix
		if r.Axis == RampAlongZ {
			i = iz
		}
		high, low := r.Max.Y(), r.Max.Y()-math.Abs(r.Rise)
		if r.Rise < 0 {
			high, low = low, high
		}
		if i == 0 {
			return math.Max(low, r.Min.Y())
		}
		return math.Max(high, r.Min.Y())
	}
	w.addBlock(blockCorners(r.Min, r.Max, top))
}

// Triangles returns the world's triangles. The slice must not be modified.
func (w *World) Triangles() []Triangle {
	return w.triangles
}

// Edges returns the outline edges of every box and ramp.
func (w *World) Edges() []Edge {
	return w.edges
}

// Bounds returns the extent of all geometry added so far.
func (w *World) Bounds() AABB {
	return w.bounds
}

// Space returns the broad-phase space, rebuilding it if geometry changed.
func (w *World) Space() *resolv.Space {
	w.rebuild()
	return w.space
}

// Intersect tests the capsule against all nearby triangles. Hits are folded
// into one contact: a copy of the capsule is pushed out of each triangle in
// turn and the contact is the resulting displacement of its center.
func (w *World) Intersect(c *Capsule) (Contact, bool) {
	candidates := w.candidates(c.Bounds())
	if len(candidates) == 0 {
		return Contact{}, false
	}

	moved := c.Clone()
	hit := false
	for _, i := range candidates {
		if contact, ok := w.triangles[i].intersectCapsule(moved); ok {
			hit = true
			moved.Translate(contact.Normal.Mul(contact.Depth))
		}
	}
	if !hit {
		return Contact{}, false
	}

	displacement := moved.Center().Sub(c.Center())
	normal, _ := gamemath.SafeNormalize(displacement)
	return Contact{Normal: normal, Depth: displacement.Len()}, true
}

// candidates returns indices of triangles whose bounds overlap box.
func (w *World) candidates(box AABB) []int {
	w.rebuild()
	if w.space == nil {
		return nil
	}

	x, y, width, height := w.toSpace(box)
	w.probe.X, w.probe.Y, w.probe.W, w.probe.H = x, y, width, height

	check := w.probe.Check(0, 0, tags.ResolvSolid)
	if check == nil {
		return nil
	}

	seen := make(map[int]struct{}, len(check.Objects))
	out := make([]int, 0, len(check.Objects))
	for _, obj := range check.ObjectsByTags(tags.ResolvSolid) {
		i, ok := obj.Data.(int)
		if !ok {
			continue
		}
		if _, dup := seen[i]; dup {
			continue
		}
		seen[i] = struct{}{}
		if w.triangles[i].Bounds().Intersects(box) {
			out = append(out, i)
		}
	}
	return out
}

func (w *World) rebuild() {
	if !w.dirty {
		return
	}
	w.dirty = false
	if !w.hasBounds {
		w.space = nil
		return
	}

	w.origin = mgl64.Vec3{w.bounds.Min.X() - spacePadding, 0, w.bounds.Min.Z() - spacePadding}
	width := int(math.Ceil((w.bounds.Max.X()-w.origin.X()+spacePadding)*spaceScale)) + 1
	depth := int(math.Ceil((w.bounds.Max.Z()-w.origin.Z()+spacePadding)*spaceScale)) + 1

	w.space = resolv.NewSpace(width, depth, w.cellSize, w.cellSize)
	for i, t := range w.triangles {
		x, y, tw, th := w.toSpace(t.Bounds())
		obj := resolv.NewObject(x, y, tw, th, tags.ResolvSolid)
		obj.Data = i
		w.space.Add(obj)
	}

	w.probe = resolv.NewObject(0, 0, 1, 1, tags.ResolvPlayer)
	w.space.Add(w.probe)
}

// toSpace maps the XZ footprint of box into padded resolv coordinates. Flat
// footprints still cover at least one cell.
func (w *World) toSpace(box AABB) (x, y, width, height float64) {
	x = math.Floor((box.Min.X()-w.origin.X())*spaceScale) - 1
	y = math.Floor((box.Min.Z()-w.origin.Z())*spaceScale) - 1
	width = math.Ceil((box.Max.X()-box.Min.X())*spaceScale) + 2
	height = math.Ceil((box.Max.Z()-box.Min.Z())*spaceScale) + 2
	return x, y, width, height
}

func (w *World) grow(b AABB) {
	if !w.hasBounds {
		w.bounds = b
		w.hasBounds = true
		return
	}
	w.bounds = w.bounds.Union(b)
}

// blockCorners returns the eight corners indexed by ix|iy<<1|iz<<2, with the
// top corners lifted to top(ix, iz).
func blockCorners(min, max mgl64.Vec3, top func(ix, iz int) float64) [8]mgl64.Vec3 {
	var c [8]mgl64.Vec3
	for i := 0; i < 8; i++ {
		ix, iy, iz := i&1, (i>>1)&1, (i>>2)&1
		x, z := min.X(), min.Z()
		if ix == 1 {
			x = max.X()
		}
		if iz == 1 {
			z = max.Z()
		}
		y := min.Y()
		if iy == 1 {
			y = top(ix, iz)
		}
		c[i] = mgl64.Vec3{x, y, z}
	}
	return c
}

// blockFaces lists each face as four corner indices, counter-clockwise seen
// from outside.
var blockFaces = [6][4]int{
	{2, 6, 7, 3}, // top
	{0, 1, 5, 4}, // bottom
	{1, 3, 7, 5}, // +x
	{0, 4, 6, 2}, // -x
	{4, 5, 7, 6}, // +z
	{0, 2, 3, 1}, // -z
}

var blockEdges = [12][2]int{
	{0, 1}, {1, 5}, {5, 4}, {4, 0},
	{2, 3}, {3, 7}, {7, 6}, {6, 2},
	{0, 2}, {1, 3}, {5, 7}, {4, 6},
}

func (w *World) addBlock(c [8]mgl64.Vec3) {
	for _, f := range blockFaces {
		w.AddTriangle(c[f[0]], c[f[1]], c[f[2]])
		w.AddTriangle(c[f[0]], c[f[2]], c[f[3]])
	}
	for _, e := range blockEdges {
		if c[e[0]].ApproxEqual(c[e[1]]) {
			continue
		}
		w.edges = append(w.edges, Edge{c[e[0]], c[e[1]]})
	}
}
