package config

// SensitivityStep is one mouse sensitivity option in the switcher
type SensitivityStep struct {
	Scale float64
	Label string
}

// SwitcherConfig contains the level/variant switcher panel configuration
type SwitcherConfig struct {
	PanelWidth       int
	ButtonPadding    int
	Spacing          int
	SensitivitySteps []SensitivityStep
	DefaultStepIndex int
}

// PersistenceConfig names the on-disk settings store
type PersistenceConfig struct {
	AppName     string
	SettingsKey string
}

// Switcher is the global switcher panel configuration
var Switcher SwitcherConfig

// Persistence is the global settings store configuration
var Persistence PersistenceConfig

func init() {
	Switcher = SwitcherConfig{
		PanelWidth:    420,
		ButtonPadding: 8,
		Spacing:       6,
		SensitivitySteps: []SensitivityStep{
			{Scale: 0.5, Label: "Slow"},
			{Scale: 1, Label: "Normal"},
			{Scale: 1.5, Label: "Fast"},
			{Scale: 2, Label: "Very fast"},
		},
		DefaultStepIndex: 1,
	}

	Persistence = PersistenceConfig{
		AppName:     "capsulerun",
		SettingsKey: "settings",
	}
}
