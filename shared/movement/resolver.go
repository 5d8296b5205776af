package movement

import "github.com/automoto/capsulerun/shared/collision"

// Resolve queries geo with the body's collider. A contact whose normal points
// up marks the body as grounded; any other contact removes the velocity
// component along the normal. Penetration at or above noiseFloor is pushed out.
func Resolve(body *Body, geo collision.Geometry, noiseFloor float64) (collision.Contact, bool) {
	contact, ok := geo.Intersect(body.Collider)
	if !ok {
		body.OnFloor = false
		return collision.Contact{}, false
	}

	body.OnFloor = contact.Normal.Y() > 0
	if !body.OnFloor {
		body.Velocity = body.Velocity.Sub(contact.Normal.Mul(contact.Normal.Dot(body.Velocity)))
	}

	if contact.Depth >= noiseFloor {
		body.Collider.Translate(contact.Normal.Mul(contact.Depth))
	}
	return contact, true
}
