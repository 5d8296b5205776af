package components

import (
	cfg "github.com/automoto/capsulerun/config"
	"github.com/automoto/capsulerun/shared/movement"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions,
// plus the raw key map and mouse delta the controller reads.
type InputData struct {
	Current  [cfg.ActionCount]bool // Current frame's Pressed state
	Previous [cfg.ActionCount]bool // Previous frame's Pressed state

	// Keys holds every key held this frame, by name.
	Keys movement.KeyState

	MouseDX       float64
	MouseDY       float64
	PointerLocked bool

	cursorX, cursorY int
	cursorValid      bool
}

// Cursor returns the last sampled cursor position.
func (i *InputData) Cursor() (x, y int, ok bool) {
	return i.cursorX, i.cursorY, i.cursorValid
}

// SetCursor stores the cursor position sampled this frame.
func (i *InputData) SetCursor(x, y int) {
	i.cursorX, i.cursorY = x, y
	i.cursorValid = true
}

// ForgetCursor drops the previous sample so the next frame reports no delta.
func (i *InputData) ForgetCursor() {
	i.cursorValid = false
}

// Movement converts the raw state into a controller input.
func (i *InputData) Movement() movement.Input {
	return movement.Input{
		Keys:          i.Keys,
		MouseDX:       i.MouseDX,
		MouseDY:       i.MouseDY,
		PointerLocked: i.PointerLocked,
	}
}

var Input = donburi.NewComponentType[InputData]()
