package movement

import (
	"math"

	"github.com/automoto/capsulerun/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

// CameraSettings configures the camera-driven strategy.
type CameraSettings struct {
	GroundSpeed float64
	AirSpeed    float64
	JumpSpeed   float64
	Sensitivity float64
	// MaxPitch bounds the look angle in both directions, in radians.
	MaxPitch float64
	// MeshOffsetY places the character mesh relative to the camera.
	MeshOffsetY float64
	JumpPolicy  JumpPolicy
}

// DefaultCameraSettings returns the stock first-person tuning.
func DefaultCameraSettings() CameraSettings {
	return CameraSettings{
		GroundSpeed: 25,
		AirSpeed:    8,
		JumpSpeed:   15,
		Sensitivity: 1.0 / 500,
		MaxPitch:    math.Pi / 2,
		MeshOffsetY: -1,
		JumpPolicy:  JumpOnce,
	}
}

// Camera is the first-person strategy. The view sits on the collider's top
// endpoint and movement follows the view direction.
type Camera struct {
	Settings CameraSettings

	yaw   float64
	pitch float64
	// home is the yaw restored on reset.
	home float64
	jump jumpTrigger
}

// NewCamera returns a camera strategy looking down -Z.
func NewCamera(s CameraSettings) *Camera {
	return &Camera{Settings: s, jump: jumpTrigger{policy: s.JumpPolicy}}
}

func (c *Camera) Kind() Kind { return CameraDriven }

func (c *Camera) Look(dx, dy float64) {
	c.yaw -= dx * c.Settings.Sensitivity
	c.pitch = gamemath.Clamp(c.pitch-dy*c.Settings.Sensitivity, -c.Settings.MaxPitch, c.Settings.MaxPitch)
}

// SetAngles points the view. Pitch is clamped.
func (c *Camera) SetAngles(yaw, pitch float64) {
	c.yaw = yaw
	c.pitch = gamemath.Clamp(pitch, -c.Settings.MaxPitch, c.Settings.MaxPitch)
}

// Face sets the heading restored on reset and turns the view to it.
func (c *Camera) Face(dir mgl64.Vec3) {
	if d, ok := gamemath.SafeNormalize(gamemath.Horizontal(dir)); ok {
		c.home = math.Atan2(-d.X(), -d.Z())
	}
	c.yaw = c.home
	c.pitch = 0
}

// Angles returns the current yaw and pitch.
func (c *Camera) Angles() (yaw, pitch float64) {
	return c.yaw, c.pitch
}

// Forward returns the horizontal view direction. ok is false when looking
// straight up or down.
func (c *Camera) Forward() (mgl64.Vec3, bool) {
	return gamemath.SafeNormalize(gamemath.Horizontal(gamemath.DirectionFromYawPitch(c.yaw, c.pitch)))
}

func (c *Camera) Command(body *Body, in MoveState, dt float64) {
	if forward, ok := c.Forward(); ok {
		side := forward.Cross(gamemath.Up)
		s := c.Settings
		if in.Forward {
			addImpulse(body, forward, dt, s.GroundSpeed, s.AirSpeed)
		}
		if in.Backward {
			addImpulse(body, forward.Mul(-1), dt, s.GroundSpeed, s.AirSpeed)
		}
		if in.Left {
			addImpulse(body, side.Mul(-1), dt, s.GroundSpeed, s.AirSpeed)
		}
		if in.Right {
			addImpulse(body, side, dt, s.GroundSpeed, s.AirSpeed)
		}
	}

	if c.jump.fire(in.Jump, body.OnFloor) {
		body.Velocity[1] = c.Settings.JumpSpeed
	}
}

func (c *Camera) Sync(body *Body, _ float64) Pose {
	eye := body.Collider.End
	return Pose{
		MeshPosition:   eye.Add(mgl64.Vec3{0, c.Settings.MeshOffsetY, 0}),
		MeshYaw:        c.yaw + math.Pi,
		CameraPosition: eye,
		CameraTarget:   eye.Add(gamemath.DirectionFromYawPitch(c.yaw, c.pitch)),
		CameraYaw:      c.yaw,
		CameraPitch:    c.pitch,
	}
}

// Reset levels the view and turns it back to the spawn heading.
func (c *Camera) Reset(*Body) {
	c.yaw = c.home
	c.pitch = 0
	c.jump.reset()
}
