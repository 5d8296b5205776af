package systems

import (
	"encoding/json"

	"github.com/automoto/capsulerun/components"
	cfg "github.com/automoto/capsulerun/config"
	"github.com/quasilyte/gdata"
	"github.com/rs/zerolog/log"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Debug            bool   `json:"debug"`
	SensitivityIndex int    `json:"sensitivityIndex"`
	LastLevel        string `json:"lastLevel"`
	LastVariant      string `json:"lastVariant"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// session carries settings across scenes, which each own a fresh world.
var session = defaultSettings()

func defaultSettings() SavedSettings {
	return SavedSettings{
		Debug:            cfg.Debug.Overlay,
		SensitivityIndex: cfg.Switcher.DefaultStepIndex,
		LastLevel:        cfg.Debug.Level,
		LastVariant:      cfg.Debug.Variant,
	}
}

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Persistence.AppName,
	})
	if err != nil {
		log.Warn().Err(err).Msg("could not initialize persistence")
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk. It returns nil when nothing was saved yet.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(cfg.Persistence.SettingsKey)
	if err != nil {
		log.Warn().Err(err).Msg("could not load settings")
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}
	return decodeSettings(data)
}

func decodeSettings(data []byte) (*SavedSettings, error) {
	settings := defaultSettings()
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Warn().Err(err).Msg("could not parse saved settings")
		return nil, err
	}
	if settings.SensitivityIndex < 0 || settings.SensitivityIndex >= len(cfg.Switcher.SensitivitySteps) {
		settings.SensitivityIndex = cfg.Switcher.DefaultStepIndex
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Warn().Err(err).Msg("could not serialize settings")
		return err
	}

	if err := gdataManager.SaveItem(cfg.Persistence.SettingsKey, data); err != nil {
		log.Warn().Err(err).Msg("could not save settings")
		return err
	}
	return nil
}

// SaveCurrentSettings stores the Settings component for the next scene and on disk.
func SaveCurrentSettings(s *components.SettingsData) {
	session = SavedSettings{
		Debug:            s.Debug,
		SensitivityIndex: s.SensitivityIndex,
		LastLevel:        s.LastLevel,
		LastVariant:      s.LastVariant,
	}
	_ = SaveSettings(&session)
}

// ApplySavedSettingsGlobal applies settings without needing an ECS reference.
// Used during startup before scenes are created. Command-line choices win over
// what was saved.
func ApplySavedSettingsGlobal(saved *SavedSettings, levelFromFlag, variantFromFlag bool) {
	if saved == nil {
		return
	}
	next := *saved
	if levelFromFlag || next.LastLevel == "" {
		next.LastLevel = session.LastLevel
	}
	if variantFromFlag || next.LastVariant == "" {
		next.LastVariant = session.LastVariant
	}
	if cfg.Debug.Overlay {
		next.Debug = true
	}
	session = next
}

// Session returns the settings the next scene starts with.
func Session() SavedSettings {
	return session
}

// ResetSession restores the defaults derived from the current config.
func ResetSession() {
	session = defaultSettings()
}
