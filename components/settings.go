package components

import "github.com/yohamta/donburi"

// SettingsData holds the per-session toggles that are persisted between runs.
type SettingsData struct {
	Debug            bool
	SensitivityIndex int
	LastLevel        string
	LastVariant      string
}

var Settings = donburi.NewComponentType[SettingsData]()
