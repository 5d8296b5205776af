package config

import (
	"github.com/automoto/capsulerun/shared/movement"
	"github.com/hajimehoshi/ebiten/v2"
)

// ActionID represents a logical game action outside of movement
type ActionID int

const (
	ActionNone ActionID = iota
	ActionToggleSwitcher
	ActionToggleDebug
	ActionReleasePointer
	ActionReset
	ActionMenuUp
	ActionMenuDown
	ActionMenuSelect
	ActionMenuBack
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys bound to an action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding `yaml:"-"`
	// Movement keys are named so they can be overridden from YAML
	Movement movement.Bindings `yaml:"movement"`
	// CaptureOnClick locks the pointer when the window is clicked
	CaptureOnClick bool `yaml:"capture_on_click"`
}

// Input is the global input configuration
var Input InputConfig

func defaultInput() InputConfig {
	return InputConfig{
		Movement:       movement.DefaultBindings(),
		CaptureOnClick: true,
		Bindings: map[ActionID]InputBinding{
			ActionToggleSwitcher: {Keys: []ebiten.Key{ebiten.KeyTab}},
			ActionToggleDebug:    {Keys: []ebiten.Key{ebiten.KeyF3}},
			ActionReleasePointer: {Keys: []ebiten.Key{ebiten.KeyEscape}},
			ActionReset:          {Keys: []ebiten.Key{ebiten.KeyR}},
			ActionMenuUp:         {Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW}},
			ActionMenuDown:       {Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS}},
			ActionMenuSelect:     {Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace}},
			ActionMenuBack:       {Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyBackspace}},
		},
	}
}
