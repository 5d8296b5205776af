package systems

import (
	"fmt"

	"github.com/automoto/capsulerun/components"
	cfg "github.com/automoto/capsulerun/config"
	"github.com/automoto/capsulerun/shared/leveldata"
	"github.com/automoto/capsulerun/shared/movement"
	"github.com/yohamta/donburi/ecs"
)

// InitSwitcher lists every level with every variant and selects the running
// pairing, or the first one.
func InitSwitcher(s *components.SwitcherData, levels []*leveldata.Level, level string, kind movement.Kind) {
	s.Choices = s.Choices[:0]
	s.Current = -1
	for _, l := range levels {
		for _, k := range movement.Kinds() {
			if l.Name == level && k == kind {
				s.Current = len(s.Choices)
			}
			s.Choices = append(s.Choices, components.SwitcherChoice{Level: l.Name, Title: l.Title, Kind: k})
		}
	}
	s.Selected = max(s.Current, 0)
}

// MoveSelection steps the highlighted choice, wrapping around.
func MoveSelection(s *components.SwitcherData, delta int) {
	n := len(s.Choices)
	if n == 0 {
		return
	}
	s.Selected = ((s.Selected+delta)%n + n) % n
}

// ChoiceLabel is the button text of choice i.
func ChoiceLabel(s *components.SwitcherData, i int) string {
	c := s.Choices[i]
	label := fmt.Sprintf("%s / %s", c.Title, VariantLabel(c.Kind))
	if i == s.Current {
		label += " (running)"
	}
	if i == s.Selected {
		label = "> " + label
	}
	return label
}

// NewUpdateSwitcher returns the switcher's keyboard navigation system. onPick
// runs when a choice is confirmed and onBack when the panel is dismissed.
func NewUpdateSwitcher(s *components.SwitcherData, onPick func(components.SwitcherChoice), onBack func()) func(*ecs.ECS) {
	return func(ecs *ecs.ECS) {
		input := getOrCreateInput(ecs)

		switch {
		case GetAction(input, cfg.ActionMenuUp).JustPressed:
			MoveSelection(s, -1)
		case GetAction(input, cfg.ActionMenuDown).JustPressed:
			MoveSelection(s, 1)
		case GetAction(input, cfg.ActionMenuSelect).JustPressed:
			if len(s.Choices) > 0 && onPick != nil {
				onPick(s.Choices[s.Selected])
			}
		case GetAction(input, cfg.ActionMenuBack).JustPressed,
			GetAction(input, cfg.ActionToggleSwitcher).JustPressed:
			if onBack != nil {
				onBack()
			}
		}
	}
}
