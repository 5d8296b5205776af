package components

import (
	"github.com/automoto/capsulerun/shared/movement"
	"github.com/yohamta/donburi"
)

// SwitcherChoice is one level and controller variant pairing.
type SwitcherChoice struct {
	Level string
	Title string
	Kind  movement.Kind
}

// SwitcherData is the state of the level/variant switcher panel.
type SwitcherData struct {
	Choices  []SwitcherChoice
	Selected int
	// Current is the choice that is running, or -1 on startup.
	Current int
}

var Switcher = donburi.NewComponentType[SwitcherData]()
