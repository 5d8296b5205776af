package systems

import (
	"github.com/automoto/capsulerun/components"
	cfg "github.com/automoto/capsulerun/config"
	"github.com/automoto/capsulerun/systems/factory"
	"github.com/automoto/capsulerun/tags"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSettings returns the scene's settings, seeded from the session.
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			Debug:            session.Debug,
			SensitivityIndex: session.SensitivityIndex,
			LastLevel:        session.LastLevel,
			LastVariant:      session.LastVariant,
		})
	}
	return components.Settings.Get(entry)
}

// SensitivityStep returns the mouse sensitivity option at index, falling back
// to the default step.
func SensitivityStep(index int) cfg.SensitivityStep {
	steps := cfg.Switcher.SensitivitySteps
	if index < 0 || index >= len(steps) {
		index = cfg.Switcher.DefaultStepIndex
	}
	if index < 0 || index >= len(steps) {
		return cfg.SensitivityStep{Scale: 1, Label: "Normal"}
	}
	return steps[index]
}

// CycleSensitivity advances to the next sensitivity option and returns it.
func CycleSensitivity(s *components.SettingsData) cfg.SensitivityStep {
	if n := len(cfg.Switcher.SensitivitySteps); n > 0 {
		s.SensitivityIndex = (s.SensitivityIndex + 1) % n
	}
	return SensitivityStep(s.SensitivityIndex)
}

// RefreshSettings pulls switcher changes into a scene that is being resumed.
func RefreshSettings(ecs *ecs.ECS) {
	settings := GetOrCreateSettings(ecs)
	settings.Debug = session.Debug
	settings.SensitivityIndex = session.SensitivityIndex

	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		ctrl := components.Controller.Get(playerEntry)
		factory.SetSensitivity(ctrl.Strategy, SensitivityStep(settings.SensitivityIndex).Scale)
	}
}
