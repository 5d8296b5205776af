package movement

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Kind identifies a movement strategy.
type Kind int

const (
	CharacterDriven Kind = iota
	CameraDriven
)

func (k Kind) String() string {
	switch k {
	case CharacterDriven:
		return "character"
	case CameraDriven:
		return "camera"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind accepts the names returned by Kind.String.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "character":
		return CharacterDriven, nil
	case "camera":
		return CameraDriven, nil
	}
	return 0, fmt.Errorf("unknown controller variant %q", s)
}

// Kinds lists every strategy in menu order.
func Kinds() []Kind {
	return []Kind{CharacterDriven, CameraDriven}
}

// Pose is the renderable output of a strategy: where the character mesh is
// drawn and where the view looks from. Nothing reads it back.
type Pose struct {
	MeshPosition   mgl64.Vec3
	MeshYaw        float64
	CameraPosition mgl64.Vec3
	CameraTarget   mgl64.Vec3
	CameraYaw      float64
	CameraPitch    float64
}

// Strategy maps input to velocity and physical state to a Pose.
type Strategy interface {
	Kind() Kind
	// Look applies a raw mouse delta captured while the pointer is locked.
	Look(dx, dy float64)
	// Command turns one substep of movement intent into velocity changes.
	Command(body *Body, in MoveState, dt float64)
	// Sync computes the mesh and view transforms after the body moved.
	Sync(body *Body, dt float64) Pose
	// Reset restores strategy-owned orientation after a teleport.
	Reset(body *Body)
}

// JumpPolicy decides how a held jump key behaves.
type JumpPolicy int

const (
	// JumpRepeat jumps on every grounded substep while the key is held.
	JumpRepeat JumpPolicy = iota
	// JumpOnce latches each press and fires it once, on the first grounded
	// substep after the press.
	JumpOnce
)

func (p JumpPolicy) String() string {
	switch p {
	case JumpRepeat:
		return "repeat"
	case JumpOnce:
		return "once"
	}
	return fmt.Sprintf("JumpPolicy(%d)", int(p))
}

// MarshalText implements encoding.TextMarshaler.
func (p JumpPolicy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *JumpPolicy) UnmarshalText(b []byte) error {
	switch string(b) {
	case "repeat":
		*p = JumpRepeat
	case "once":
		*p = JumpOnce
	default:
		return fmt.Errorf("unknown jump policy %q", string(b))
	}
	return nil
}

// jumpTrigger applies a JumpPolicy to the raw jump flag.
type jumpTrigger struct {
	policy  JumpPolicy
	latched bool
	held    bool
}

// fire reports whether a jump impulse should be applied this substep.
func (j *jumpTrigger) fire(pressed, onFloor bool) bool {
	if j.policy == JumpRepeat {
		return pressed && onFloor
	}

	if pressed && !j.held {
		j.latched = true
	}
	j.held = pressed
	if j.latched && onFloor {
		j.latched = false
		return true
	}
	return false
}

func (j *jumpTrigger) reset() {
	j.latched = false
	j.held = false
}

// addImpulse adds dir scaled by the grounded or airborne speed. dir is
// expected to be horizontal and normalized.
func addImpulse(body *Body, dir mgl64.Vec3, dt, groundSpeed, airSpeed float64) {
	speed := airSpeed
	if body.OnFloor {
		speed = groundSpeed
	}
	body.Velocity = body.Velocity.Add(dir.Mul(speed * dt))
}
