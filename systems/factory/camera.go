package factory

import (
	"github.com/automoto/capsulerun/archetypes"
	"github.com/automoto/capsulerun/components"
	"github.com/automoto/capsulerun/shared/movement"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera spawns the view entity at the controller's initial pose.
func CreateCamera(ecs *ecs.ECS, pose movement.Pose) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.View.Set(camera, &components.ViewData{
		Position: pose.CameraPosition,
		Target:   pose.CameraTarget,
		Yaw:      pose.CameraYaw,
		Pitch:    pose.CameraPitch,
	})
	return camera
}
