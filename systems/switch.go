package systems

import (
	cfg "github.com/automoto/capsulerun/config"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateSwitchKeys returns a system handling the scene-level toggles:
// Tab opens the switcher through onSwitch and F3 flips the debug overlay.
func NewUpdateSwitchKeys(onSwitch func()) func(*ecs.ECS) {
	return func(ecs *ecs.ECS) {
		input := getOrCreateInput(ecs)
		settings := GetOrCreateSettings(ecs)

		if GetAction(input, cfg.ActionToggleDebug).JustPressed {
			settings.Debug = !settings.Debug
			log.Debug().Bool("debug", settings.Debug).Msg("debug overlay toggled")
			SaveCurrentSettings(settings)
		}

		if GetAction(input, cfg.ActionToggleSwitcher).JustPressed && onSwitch != nil {
			ReleasePointer()
			onSwitch()
		}
	}
}
