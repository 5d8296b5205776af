package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every Validate failure
var ErrInvalid = errors.New("invalid config")

// File mirrors the package variables as one YAML document. Sections absent
// from an override file keep their current values.
type File struct {
	Window       Config             `yaml:"window"`
	Physics      PhysicsConfig      `yaml:"physics"`
	Character    CharacterConfig    `yaml:"character"`
	FollowCamera FollowCameraConfig `yaml:"follow_camera"`
	CameraDriven CameraDrivenConfig `yaml:"camera_driven"`
	Frame        FrameConfig        `yaml:"frame"`
	View         ViewConfig         `yaml:"view"`
	Debug        DebugConfig        `yaml:"debug"`
	HUD          HUDConfig          `yaml:"hud"`
	Input        InputConfig        `yaml:"input"`
}

func snapshot() File {
	return File{
		Window:       *C,
		Physics:      Physics,
		Character:    Character,
		FollowCamera: FollowCamera,
		CameraDriven: CameraDriven,
		Frame:        Frame,
		View:         View,
		Debug:        Debug,
		HUD:          HUD,
		Input:        Input,
	}
}

func apply(f File) {
	window := f.Window
	C = &window
	Physics = f.Physics
	Character = f.Character
	FollowCamera = f.FollowCamera
	CameraDriven = f.CameraDriven
	Frame = f.Frame
	View = f.View
	Debug = f.Debug
	HUD = f.HUD
	Input = f.Input
}

// ApplyYAML overlays the keys present in data onto the current values. The
// package variables are left untouched when parsing or validation fails.
func ApplyYAML(data []byte) error {
	f := snapshot()
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parsing config overrides: %w", err)
	}
	if err := f.Validate(); err != nil {
		return err
	}
	apply(f)
	return nil
}

// LoadOverrides reads a YAML file and applies it with ApplyYAML.
func LoadOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := ApplyYAML(data); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// DefaultYAML returns the current values as YAML, suitable as a starting
// point for an override file.
func DefaultYAML() ([]byte, error) {
	data, err := yaml.Marshal(snapshot())
	if err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	return data, nil
}

// Validate checks the current package variables.
func Validate() error {
	f := snapshot()
	return f.Validate()
}

// Validate rejects values the simulation cannot run with.
func (f *File) Validate() error {
	switch {
	case f.Frame.SubSteps <= 0:
		return fmt.Errorf("%w: frame.sub_steps must be positive, got %d", ErrInvalid, f.Frame.SubSteps)
	case f.Frame.MaxFrameDelta <= 0:
		return fmt.Errorf("%w: frame.max_frame_delta must be positive, got %v", ErrInvalid, f.Frame.MaxFrameDelta)
	case f.Physics.CapsuleRadius < 0:
		return fmt.Errorf("%w: physics.capsule_radius must not be negative, got %v", ErrInvalid, f.Physics.CapsuleRadius)
	case f.Physics.CapsuleHeight < 2*f.Physics.CapsuleRadius:
		return fmt.Errorf("%w: physics.capsule_height %v is shorter than two radii", ErrInvalid, f.Physics.CapsuleHeight)
	case f.FollowCamera.MinPitchDeg > f.FollowCamera.MaxPitchDeg:
		return fmt.Errorf("%w: follow_camera pitch range [%v, %v] is inverted", ErrInvalid, f.FollowCamera.MinPitchDeg, f.FollowCamera.MaxPitchDeg)
	case f.CameraDriven.MaxPitchDeg < 0 || f.CameraDriven.MaxPitchDeg > 90:
		return fmt.Errorf("%w: camera_driven.max_pitch_deg must be within [0, 90], got %v", ErrInvalid, f.CameraDriven.MaxPitchDeg)
	case f.Window.TPS <= 0:
		return fmt.Errorf("%w: window.tps must be positive, got %d", ErrInvalid, f.Window.TPS)
	}
	return nil
}
