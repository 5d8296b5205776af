package systems

import (
	"image/color"
	"math"

	"github.com/automoto/capsulerun/components"
	cfg "github.com/automoto/capsulerun/config"
	"github.com/automoto/capsulerun/shared/collision"
	"github.com/automoto/capsulerun/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	lineWidth       = 1
	capsuleSegments = 16
	headingLength   = 0.8
)

// DrawWorld renders the level and the capsule as a wireframe from the view.
func DrawWorld(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.View.First(ecs.World)
	if !ok {
		return
	}
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	p := newProjector(components.View.Get(cameraEntry), w, h, cfg.View)

	world := components.Level.Get(levelEntry).World
	for _, e := range world.Edges() {
		c := cfg.HUD.WorldColor
		if e[0].Y() == e[1].Y() && e[0].Y() <= world.Bounds().Min.Y()+1e-9 {
			c = cfg.HUD.FloorColor
		}
		drawSegment(screen, p, e[0], e[1], c)
	}

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	avatar := components.Avatar.Get(playerEntry)
	if avatar.Hidden {
		return
	}
	ctrl := components.Controller.Get(playerEntry)
	drawCapsule(screen, p, ctrl.Body.Collider, cfg.HUD.CapsuleColor)

	// Heading marker from the mesh origin.
	dir := mgl64.Vec3{math.Sin(avatar.Yaw), 0, math.Cos(avatar.Yaw)}
	drawSegment(screen, p, avatar.Position, avatar.Position.Add(dir.Mul(headingLength)), cfg.HUD.ContactColor)
}

func drawSegment(screen *ebiten.Image, p projector, a, b mgl64.Vec3, c color.Color) {
	x0, y0, x1, y1, ok := p.segment(a, b)
	if !ok {
		return
	}
	vector.StrokeLine(screen, x0, y0, x1, y1, lineWidth, c, true)
}

// drawCapsule outlines the collider with rings at both sphere centers, a ring
// at each tip and four side lines.
func drawCapsule(screen *ebiten.Image, p projector, c *collision.Capsule, col color.Color) {
	r := c.Radius
	for _, center := range []mgl64.Vec3{c.Start, c.End} {
		drawRing(screen, p, center, r, col)
	}
	drawRing(screen, p, c.Start.Sub(mgl64.Vec3{0, r / 2, 0}), r*math.Sqrt(3)/2, col)
	drawRing(screen, p, c.End.Add(mgl64.Vec3{0, r / 2, 0}), r*math.Sqrt(3)/2, col)
	for i := 0; i < 4; i++ {
		s, co := math.Sincos(float64(i) * math.Pi / 2)
		off := mgl64.Vec3{co * r, 0, s * r}
		drawSegment(screen, p, c.Start.Add(off), c.End.Add(off), col)
	}
}

func drawRing(screen *ebiten.Image, p projector, center mgl64.Vec3, r float64, col color.Color) {
	prev := center.Add(mgl64.Vec3{r, 0, 0})
	for i := 1; i <= capsuleSegments; i++ {
		s, c := math.Sincos(float64(i) * 2 * math.Pi / capsuleSegments)
		next := center.Add(mgl64.Vec3{c * r, 0, s * r})
		drawSegment(screen, p, prev, next, col)
		prev = next
	}
}
