package movement

import (
	"github.com/automoto/capsulerun/shared/collision"
)

// StepResult describes one substep.
type StepResult struct {
	Contact collision.Contact
	Hit     bool
	// Reset is set when the body fell out of bounds and was respawned.
	Reset bool
	Pose  Pose
}

// Controller binds a body to a strategy and runs the per-substep update.
type Controller struct {
	Body     *Body
	Strategy Strategy
	Tuning   Tuning
	Bindings Bindings
	// Spawn is the canonical collider restored on reset.
	Spawn collision.Capsule

	pose Pose
}

// NewController places a new body on spawn and computes the initial pose.
func NewController(s Strategy, spawn collision.Capsule, t Tuning, b Bindings) *Controller {
	c := &Controller{
		Body:     NewBody(spawn),
		Strategy: s,
		Tuning:   t,
		Bindings: b,
		Spawn:    spawn,
	}
	s.Reset(c.Body)
	c.pose = s.Sync(c.Body, 0)
	return c
}

// Pose returns the most recent visual output.
func (c *Controller) Pose() Pose {
	return c.pose
}

// Step runs one substep: command, integrate, resolve, sync and the
// out-of-bounds check.
func (c *Controller) Step(in MoveState, dt float64, geo collision.Geometry) StepResult {
	c.Strategy.Command(c.Body, in, dt)
	Integrate(c.Body, dt, c.Tuning.Gravity, c.Tuning.Damping, c.Tuning.AirDampingScale)
	contact, hit := Resolve(c.Body, geo, c.Tuning.NoiseFloor)
	c.pose = c.Strategy.Sync(c.Body, dt)

	res := StepResult{Contact: contact, Hit: hit}
	if c.OutOfBounds() {
		c.Reset()
		res.Reset = true
	}
	res.Pose = c.pose
	return res
}

// Frame applies one frame of mouse look and then runs every substep of d,
// sampling the key state at the start of each. onStep, when non-nil, sees
// every substep result.
func (c *Controller) Frame(in Input, frameDelta float64, geo collision.Geometry, d Driver, onStep func(dt float64, r StepResult)) (reset bool) {
	if in.PointerLocked && (in.MouseDX != 0 || in.MouseDY != 0) {
		c.Strategy.Look(in.MouseDX, in.MouseDY)
	}
	d.Advance(frameDelta, func(dt float64) {
		r := c.Step(MoveStateFromKeys(in.Keys, c.Bindings), dt, geo)
		reset = reset || r.Reset
		if onStep != nil {
			onStep(dt, r)
		}
	})
	return reset
}

// OutOfBounds reports whether the collider's top endpoint is at or below the
// reset threshold.
func (c *Controller) OutOfBounds() bool {
	return c.Body.Collider.End.Y() <= c.Tuning.OutOfBoundsY
}

// Reset teleports the body back to spawn with zero velocity.
func (c *Controller) Reset() {
	c.Body.Collider.Set(c.Spawn.Start, c.Spawn.End, c.Spawn.Radius)
	c.Body.Velocity = [3]float64{}
	c.Body.OnFloor = false
	c.Strategy.Reset(c.Body)
	c.pose = c.Strategy.Sync(c.Body, 0)
}
