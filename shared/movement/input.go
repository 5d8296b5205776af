package movement

// Key names a physical key. Names follow ebiten's key names ("W", "ArrowUp",
// "Space") so the game layer can pass pressed keys through unchanged.
type Key string

// KeyState is the raw pressed state sampled at the start of a substep.
type KeyState map[Key]bool

// Pressed reports whether any of keys is held.
func (k KeyState) Pressed(keys ...Key) bool {
	for _, key := range keys {
		if k[key] {
			return true
		}
	}
	return false
}

// MoveState is the per-substep movement intent.
type MoveState struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
	Jump     bool
}

// Any reports whether any flag is set.
func (m MoveState) Any() bool {
	return m.Forward || m.Backward || m.Left || m.Right || m.Jump
}

// Bindings maps each movement flag to the keys that set it.
type Bindings struct {
	Forward  []Key `yaml:"forward"`
	Backward []Key `yaml:"backward"`
	Left     []Key `yaml:"left"`
	Right    []Key `yaml:"right"`
	Jump     []Key `yaml:"jump"`
}

// DefaultBindings returns WASD plus arrow keys and Space.
func DefaultBindings() Bindings {
	return Bindings{
		Forward:  []Key{"W", "ArrowUp"},
		Backward: []Key{"S", "ArrowDown"},
		Left:     []Key{"A", "ArrowLeft"},
		Right:    []Key{"D", "ArrowRight"},
		Jump:     []Key{"Space"},
	}
}

// MoveStateFromKeys derives the movement flags from raw key state.
func MoveStateFromKeys(keys KeyState, b Bindings) MoveState {
	return MoveState{
		Forward:  keys.Pressed(b.Forward...),
		Backward: keys.Pressed(b.Backward...),
		Left:     keys.Pressed(b.Left...),
		Right:    keys.Pressed(b.Right...),
		Jump:     keys.Pressed(b.Jump...),
	}
}

// Input is everything a controller reads in one rendered frame.
type Input struct {
	Keys KeyState
	// MouseDX and MouseDY are the raw cursor deltas since the previous frame.
	// They are ignored unless PointerLocked is set.
	MouseDX       float64
	MouseDY       float64
	PointerLocked bool
}
