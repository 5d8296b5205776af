package systems

import (
	"github.com/automoto/capsulerun/components"
	cfg "github.com/automoto/capsulerun/config"
	"github.com/automoto/capsulerun/shared/movement"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for pressed keys to avoid allocations
var pressedKeys []ebiten.Key

// UpdateInput polls raw input and updates the Input component.
// Must run BEFORE UpdateController in the system order.
func UpdateInput(ecs *ecs.ECS) {
	_, existed := components.Input.First(ecs.World)
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	pressedKeys = inpututil.AppendPressedKeys(pressedKeys[:0])
	pollKeys(input, pressedKeys)
	if !existed {
		// Keys still held from the previous scene do not count as new presses.
		input.Previous = input.Current
	}

	updatePointer(input)
}

// pollKeys fills the raw key map and the action flags from the held keys.
func pollKeys(input *components.InputData, pressed []ebiten.Key) {
	if input.Keys == nil {
		input.Keys = movement.KeyState{}
	}
	clear(input.Keys)
	for _, key := range pressed {
		input.Keys[movement.Key(key.String())] = true
	}

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if input.Keys[movement.Key(key.String())] {
				input.Current[actionID] = true
			}
		}
	}
}

// updatePointer handles cursor capture and turns cursor motion into a look delta.
func updatePointer(input *components.InputData) {
	captured := ebiten.CursorMode() == ebiten.CursorModeCaptured

	if !captured && cfg.Input.CaptureOnClick && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
		captured = true
		input.ForgetCursor()
	}
	if captured && GetAction(input, cfg.ActionReleasePointer).JustPressed {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
		captured = false
	}

	x, y := ebiten.CursorPosition()
	applyCursor(input, x, y, captured)
}

// applyCursor records the new cursor sample. The delta is only reported while
// the pointer is locked and a previous sample exists.
func applyCursor(input *components.InputData, x, y int, locked bool) {
	input.MouseDX, input.MouseDY = 0, 0
	if px, py, ok := input.Cursor(); ok && locked && input.PointerLocked {
		input.MouseDX = float64(x - px)
		input.MouseDY = float64(y - py)
	}
	input.PointerLocked = locked
	input.SetCursor(x, y)
}

// ReleasePointer shows the cursor again, for scenes that need the mouse.
func ReleasePointer() {
	ebiten.SetCursorMode(ebiten.CursorModeVisible)
}

func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		components.Input.Get(entry).Keys = movement.KeyState{}
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
