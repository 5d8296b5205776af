package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// AvatarData is where the visible capsule mesh is drawn.
type AvatarData struct {
	Position mgl64.Vec3
	Yaw      float64
	// Hidden is set for the camera-driven variant, where the eye sits inside the mesh.
	Hidden bool
}

var Avatar = donburi.NewComponentType[AvatarData]()
