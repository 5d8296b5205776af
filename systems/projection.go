package systems

import (
	"math"

	"github.com/automoto/capsulerun/components"
	cfg "github.com/automoto/capsulerun/config"
	"github.com/automoto/capsulerun/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

// projector maps world points onto the screen for the wireframe view.
type projector struct {
	view   mgl64.Mat4
	proj   mgl64.Mat4
	near   float64
	width  float64
	height float64
}

func newProjector(v *components.ViewData, width, height int, view cfg.ViewConfig) projector {
	up := gamemath.Up
	if fwd, ok := v.Forward(); ok && math.Abs(fwd.Dot(up)) > 0.999 {
		// Looking straight up or down: use the heading as the screen's up.
		up = gamemath.DirectionFromYawPitch(v.Yaw, 0)
		if fwd.Y() > 0 {
			up = up.Mul(-1)
		}
	}
	aspect := float64(width) / math.Max(float64(height), 1)
	return projector{
		view:   mgl64.LookAtV(v.Position, v.Target, up),
		proj:   mgl64.Perspective(view.FOV(), aspect, view.Near, view.Far),
		near:   view.Near,
		width:  float64(width),
		height: float64(height),
	}
}

// segment clips a world segment against the near plane and returns its screen
// coordinates. ok is false when the segment is entirely behind the eye.
func (p projector) segment(a, b mgl64.Vec3) (x0, y0, x1, y1 float32, ok bool) {
	va := p.view.Mul4x1(a.Vec4(1)).Vec3()
	vb := p.view.Mul4x1(b.Vec4(1)).Vec3()

	// The eye looks down -Z in view space.
	limit := -p.near
	ina, inb := va.Z() <= limit, vb.Z() <= limit
	switch {
	case !ina && !inb:
		return 0, 0, 0, 0, false
	case !ina:
		va = clipNear(vb, va, limit)
	case !inb:
		vb = clipNear(va, vb, limit)
	}

	sx0, sy0 := p.toScreen(va)
	sx1, sy1 := p.toScreen(vb)
	return float32(sx0), float32(sy0), float32(sx1), float32(sy1), true
}

// point projects a single world point; ok is false behind the near plane.
func (p projector) point(v mgl64.Vec3) (x, y float32, ok bool) {
	vv := p.view.Mul4x1(v.Vec4(1)).Vec3()
	if vv.Z() > -p.near {
		return 0, 0, false
	}
	sx, sy := p.toScreen(vv)
	return float32(sx), float32(sy), true
}

func (p projector) toScreen(v mgl64.Vec3) (float64, float64) {
	clip := p.proj.Mul4x1(v.Vec4(1))
	w := clip.W()
	ndcX, ndcY := clip.X()/w, clip.Y()/w
	return (ndcX + 1) / 2 * p.width, (1 - ndcY) / 2 * p.height
}

// clipNear moves out toward in until it lies on the near plane.
func clipNear(in, out mgl64.Vec3, limit float64) mgl64.Vec3 {
	t := (limit - in.Z()) / (out.Z() - in.Z())
	return gamemath.Lerp(in, out, t)
}
