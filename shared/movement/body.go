// Package movement holds the capsule controller core: velocity integration,
// collision response, the two input strategies and the substep driver.
package movement

import (
	"github.com/automoto/capsulerun/shared/collision"
	"github.com/go-gl/mathgl/mgl64"
)

// Body is the physical state owned by one controller.
type Body struct {
	Collider *collision.Capsule
	Velocity mgl64.Vec3
	// OnFloor is only meaningful for the substep that computed it.
	OnFloor bool
}

// NewBody returns a body at rest on a copy of spawn.
func NewBody(spawn collision.Capsule) *Body {
	return &Body{Collider: spawn.Clone()}
}

// Feet returns the lowest point of the collider.
func (b *Body) Feet() mgl64.Vec3 {
	return b.Collider.Bottom()
}

// HorizontalSpeed returns the length of the XZ velocity.
func (b *Body) HorizontalSpeed() float64 {
	return mgl64.Vec2{b.Velocity.X(), b.Velocity.Z()}.Len()
}

// Tuning holds the physics constants of one controller.
type Tuning struct {
	Gravity float64
	// Damping is the ground damping coefficient; AirDampingScale multiplies
	// the resulting decay while airborne.
	Damping         float64
	AirDampingScale float64
	// NoiseFloor is the smallest penetration depth that is corrected.
	NoiseFloor   float64
	OutOfBoundsY float64
}

// DefaultTuning returns the stock constants.
func DefaultTuning() Tuning {
	return Tuning{
		Gravity:         30,
		Damping:         4,
		AirDampingScale: 0.1,
		NoiseFloor:      1e-10,
		OutOfBoundsY:    -25,
	}
}
