package systems

import (
	"github.com/automoto/capsulerun/components"
	"github.com/automoto/capsulerun/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera copies the controller's camera pose into the view. Smoothing
// already happened inside the strategy's sync.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.View.First(e.World)
	if !ok {
		return
	}
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	pose := components.Controller.Get(playerEntry).Pose()

	view := components.View.Get(cameraEntry)
	view.Position = pose.CameraPosition
	view.Target = pose.CameraTarget
	view.Yaw = pose.CameraYaw
	view.Pitch = pose.CameraPitch
}
