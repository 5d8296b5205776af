package movement

import (
	"math"

	"github.com/automoto/capsulerun/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

// CharacterSettings configures the character-driven strategy.
type CharacterSettings struct {
	GroundSpeed float64
	AirSpeed    float64
	JumpSpeed   float64
	// TurnRate is the facing rotation speed in radians per second.
	TurnRate   float64
	JumpPolicy JumpPolicy
	Follow     FollowSettings
}

// FollowSettings configures the orbiting follow camera.
type FollowSettings struct {
	Distance  float64
	Height    float64
	AimHeight float64
	// Rate is the exponential approach rate toward the desired position.
	Rate        float64
	Sensitivity float64
	// MinPitch and MaxPitch clamp the vertical orbit offset, in radians.
	MinPitch float64
	MaxPitch float64
}

// DefaultCharacterSettings returns the stock character tuning.
func DefaultCharacterSettings() CharacterSettings {
	return CharacterSettings{
		GroundSpeed: 25,
		AirSpeed:    8,
		JumpSpeed:   15,
		TurnRate:    2,
		JumpPolicy:  JumpRepeat,
		Follow: FollowSettings{
			Distance:    5,
			Height:      2,
			AimHeight:   0.5,
			Rate:        6,
			Sensitivity: 1.0 / 500,
			MinPitch:    gamemath.DegToRad(-60),
			MaxPitch:    gamemath.DegToRad(15),
		},
	}
}

// Character is the tank-style strategy: keys turn and push the character
// along its own facing while a camera orbits behind it.
type Character struct {
	Settings CharacterSettings
	// Facing is a horizontal unit vector.
	Facing mgl64.Vec3

	orbitYaw   float64
	orbitPitch float64
	camera     mgl64.Vec3
	placed     bool
	jump       jumpTrigger
}

// NewCharacter returns a character strategy facing along facing. A zero or
// vertical facing falls back to +Z.
func NewCharacter(s CharacterSettings, facing mgl64.Vec3) *Character {
	f, ok := gamemath.SafeNormalize(gamemath.Horizontal(facing))
	if !ok {
		f = mgl64.Vec3{0, 0, 1}
	}
	return &Character{Settings: s, Facing: f, jump: jumpTrigger{policy: s.JumpPolicy}}
}

func (c *Character) Kind() Kind { return CharacterDriven }

// Look orbits the follow camera.
func (c *Character) Look(dx, dy float64) {
	f := c.Settings.Follow
	c.orbitYaw -= dx * f.Sensitivity
	c.orbitPitch = gamemath.Clamp(c.orbitPitch-dy*f.Sensitivity, f.MinPitch, f.MaxPitch)
}

// OrbitAngles returns the horizontal and vertical follow offsets.
func (c *Character) OrbitAngles() (yaw, pitch float64) {
	return c.orbitYaw, c.orbitPitch
}

func (c *Character) Command(body *Body, in MoveState, dt float64) {
	turn := 0.0
	if in.Left {
		turn += c.Settings.TurnRate * dt
	}
	if in.Right {
		turn -= c.Settings.TurnRate * dt
	}
	if turn != 0 {
		if f, ok := gamemath.SafeNormalize(gamemath.RotateY(c.Facing, turn)); ok {
			c.Facing = f
		}
	}

	var move mgl64.Vec3
	if in.Forward {
		move = move.Add(c.Facing)
	}
	if in.Backward {
		move = move.Sub(c.Facing)
	}
	if dir, ok := gamemath.SafeNormalize(gamemath.Horizontal(move)); ok {
		addImpulse(body, dir, dt, c.Settings.GroundSpeed, c.Settings.AirSpeed)
	}

	if c.jump.fire(in.Jump, body.OnFloor) {
		body.Velocity[1] = c.Settings.JumpSpeed
	}
}

func (c *Character) Sync(body *Body, dt float64) Pose {
	feet := body.Feet()
	f := c.Settings.Follow
	aim := feet.Add(mgl64.Vec3{0, f.AimHeight, 0})

	desired := c.followPosition(aim)
	if !c.placed {
		c.camera = desired
		c.placed = true
	} else {
		c.camera = gamemath.Lerp(c.camera, desired, gamemath.SmoothFactor(f.Rate, dt))
	}

	look := aim.Sub(c.camera)
	return Pose{
		MeshPosition:   feet,
		MeshYaw:        gamemath.YawOf(c.Facing),
		CameraPosition: c.camera,
		CameraTarget:   aim,
		CameraYaw:      math.Atan2(-look.X(), -look.Z()),
		CameraPitch:    math.Atan2(look.Y(), mgl64.Vec2{look.X(), look.Z()}.Len()),
	}
}

// followPosition places the camera on a sphere around aim, behind the facing
// direction and rotated by the orbit offsets.
func (c *Character) followPosition(aim mgl64.Vec3) mgl64.Vec3 {
	f := c.Settings.Follow
	radius := math.Hypot(f.Distance, f.Height)
	elevation := math.Atan2(f.Height, f.Distance) - c.orbitPitch
	yaw := gamemath.YawOf(c.Facing) + c.orbitYaw

	back := mgl64.Vec3{
		-math.Sin(yaw) * math.Cos(elevation),
		math.Sin(elevation),
		-math.Cos(yaw) * math.Cos(elevation),
	}
	return aim.Add(back.Mul(radius))
}

// Reset zeroes the orbit offsets and snaps the camera on the next Sync.
func (c *Character) Reset(*Body) {
	c.orbitYaw = 0
	c.orbitPitch = 0
	c.placed = false
	c.jump.reset()
}
