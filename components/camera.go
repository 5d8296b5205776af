package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// ViewData is the eye the world is rendered from.
type ViewData struct {
	Position mgl64.Vec3
	Target   mgl64.Vec3
	Yaw      float64
	Pitch    float64
}

// Forward returns the unit view direction, or false when eye and target coincide.
func (v *ViewData) Forward() (mgl64.Vec3, bool) {
	d := v.Target.Sub(v.Position)
	if d.Len() < 1e-9 {
		return mgl64.Vec3{}, false
	}
	return d.Normalize(), true
}

var View = donburi.NewComponentType[ViewData]()
