package movement

import "github.com/automoto/capsulerun/shared/gamemath"

// Integrate advances the body's velocity by gravity and damping over dt and
// moves the collider by the new velocity.
func Integrate(body *Body, dt, gravity, dampingCoef, airScale float64) {
	if !body.OnFloor {
		body.Velocity[1] -= gravity * dt
	}

	damping := gamemath.ExpDamping(dampingCoef, dt)
	if !body.OnFloor {
		damping *= airScale
	}
	body.Velocity = body.Velocity.Add(body.Velocity.Mul(damping))

	body.Collider.Translate(body.Velocity.Mul(dt))
}
