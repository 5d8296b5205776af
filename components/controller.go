package components

import (
	"github.com/automoto/capsulerun/shared/collision"
	"github.com/automoto/capsulerun/shared/movement"
	"github.com/yohamta/donburi"
)

// ControllerData owns the running character controller of a scene.
type ControllerData struct {
	*movement.Controller
	Driver movement.Driver

	// Last substep outcome, for the debug overlay.
	LastContact collision.Contact
	LastHit     bool
	Resets      int
	Steps       int
}

var Controller = donburi.NewComponentType[ControllerData]()
