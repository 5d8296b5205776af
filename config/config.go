package config

import (
	"image/color"
	"math"

	"github.com/automoto/capsulerun/shared/gamemath"
	"github.com/automoto/capsulerun/shared/leveldata"
	"github.com/automoto/capsulerun/shared/movement"
)

// Config holds general window configuration
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	// TPS is the fixed update rate ebiten runs at
	TPS int `yaml:"tps"`
}

// PhysicsConfig contains values shared by both controller variants
type PhysicsConfig struct {
	Gravity         float64 `yaml:"gravity"`
	AirDampingScale float64 `yaml:"air_damping_scale"` // Multiplier on damping while airborne
	NoiseFloor      float64 `yaml:"noise_floor"`       // Smallest penetration that is pushed out
	OutOfBoundsY    float64 `yaml:"out_of_bounds_y"`   // Used when a level does not set its own

	// Collider
	CapsuleRadius float64 `yaml:"capsule_radius"`
	CapsuleHeight float64 `yaml:"capsule_height"` // Feet to top of the upper cap

	// Broad phase cell edge in world units
	CellSize float64 `yaml:"cell_size"`
}

// CharacterConfig tunes the character-driven variant
type CharacterConfig struct {
	GroundSpeed float64             `yaml:"ground_speed"`
	AirSpeed    float64             `yaml:"air_speed"`
	JumpSpeed   float64             `yaml:"jump_speed"`
	TurnRate    float64             `yaml:"turn_rate"` // Radians per second
	Damping     float64             `yaml:"damping"`
	JumpPolicy  movement.JumpPolicy `yaml:"jump_policy"`
}

// FollowCameraConfig tunes the orbiting camera of the character-driven variant
type FollowCameraConfig struct {
	Distance    float64 `yaml:"distance"`
	Height      float64 `yaml:"height"`
	AimHeight   float64 `yaml:"aim_height"`
	Rate        float64 `yaml:"rate"`
	Sensitivity float64 `yaml:"sensitivity"`
	MinPitchDeg float64 `yaml:"min_pitch_deg"`
	MaxPitchDeg float64 `yaml:"max_pitch_deg"`
}

// CameraDrivenConfig tunes the first-person variant
type CameraDrivenConfig struct {
	GroundSpeed float64             `yaml:"ground_speed"`
	AirSpeed    float64             `yaml:"air_speed"`
	JumpSpeed   float64             `yaml:"jump_speed"`
	Damping     float64             `yaml:"damping"`
	Sensitivity float64             `yaml:"sensitivity"`
	MaxPitchDeg float64             `yaml:"max_pitch_deg"`
	MeshOffsetY float64             `yaml:"mesh_offset_y"`
	JumpPolicy  movement.JumpPolicy `yaml:"jump_policy"`
}

// FrameConfig contains the substep driver values
type FrameConfig struct {
	SubSteps      int     `yaml:"sub_steps"`
	MaxFrameDelta float64 `yaml:"max_frame_delta"`
}

// ViewConfig contains the wireframe projection values
type ViewConfig struct {
	FOVDeg float64 `yaml:"fov_deg"`
	Near   float64 `yaml:"near"`
	Far    float64 `yaml:"far"`
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu bool   `yaml:"skip_menu"` // Skip the switcher and go directly to a level
	Overlay  bool   `yaml:"overlay"`   // Show the debug overlay on start
	Level    string `yaml:"level"`     // Level to start on
	Variant  string `yaml:"variant"`   // Controller variant to start with
}

// HUDConfig contains HUD and overlay configuration
type HUDConfig struct {
	FontSize    float64 `yaml:"font_size"`
	FadeSeconds float64 `yaml:"fade_seconds"` // Screen fade after an out-of-bounds reset
	Margin      float64 `yaml:"margin"`

	TextColor     color.RGBA `yaml:"-"`
	WorldColor    color.RGBA `yaml:"-"`
	FloorColor    color.RGBA `yaml:"-"`
	CapsuleColor  color.RGBA `yaml:"-"`
	ContactColor  color.RGBA `yaml:"-"`
	PanelColor    color.RGBA `yaml:"-"`
	SelectedColor color.RGBA `yaml:"-"`
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Character CharacterConfig
var FollowCamera FollowCameraConfig
var CameraDriven CameraDrivenConfig
var Frame FrameConfig
var View ViewConfig
var Debug DebugConfig
var HUD HUDConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Selected menu items
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Unselected menu items
	Slate        = color.RGBA{R: 120, G: 130, B: 150, A: 255}
)

func init() {
	reset()
}

// reset restores every package variable to its built-in default
func reset() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "capsulerun",
		TPS:    60,
	}

	Physics = PhysicsConfig{
		Gravity:         30,
		AirDampingScale: 0.1,
		NoiseFloor:      1e-10,
		OutOfBoundsY:    -25,
		CapsuleRadius:   0.35,
		CapsuleHeight:   1.35,
		CellSize:        2,
	}

	Character = CharacterConfig{
		GroundSpeed: 25,
		AirSpeed:    8,
		JumpSpeed:   15,
		TurnRate:    2, // Slow on purpose, fast turns are disorienting
		Damping:     4,
		JumpPolicy:  movement.JumpRepeat,
	}

	FollowCamera = FollowCameraConfig{
		Distance:    5,
		Height:      2,
		AimHeight:   0.5,
		Rate:        6,
		Sensitivity: 1.0 / 500,
		MinPitchDeg: -60,
		MaxPitchDeg: 15,
	}

	CameraDriven = CameraDrivenConfig{
		GroundSpeed: 25,
		AirSpeed:    8,
		JumpSpeed:   15,
		Damping:     4,
		Sensitivity: 1.0 / 500,
		MaxPitchDeg: 90,
		MeshOffsetY: -1,
		JumpPolicy:  movement.JumpOnce,
	}

	Frame = FrameConfig{
		SubSteps:      5,
		MaxFrameDelta: 0.05,
	}

	View = ViewConfig{
		FOVDeg: 70,
		Near:   0.1,
		Far:    200,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		Level:   "courtyard",
		Variant: movement.CharacterDriven.String(),
	}

	HUD = HUDConfig{
		FontSize:      14,
		FadeSeconds:   0.6,
		Margin:        12,
		TextColor:     White,
		WorldColor:    Slate,
		FloorColor:    LightGreen,
		CapsuleColor:  Yellow,
		ContactColor:  Red,
		PanelColor:    BlackOverlay,
		SelectedColor: LightBlue,
	}

	Input = defaultInput()
}

// Tuning returns the physics constants for a variant.
func Tuning(kind movement.Kind, outOfBoundsY float64) movement.Tuning {
	damping := Character.Damping
	if kind == movement.CameraDriven {
		damping = CameraDriven.Damping
	}
	return movement.Tuning{
		Gravity:         Physics.Gravity,
		Damping:         damping,
		AirDampingScale: Physics.AirDampingScale,
		NoiseFloor:      Physics.NoiseFloor,
		OutOfBoundsY:    outOfBoundsY,
	}
}

// LevelTuning is Tuning with the level's reset threshold, falling back to
// Physics.OutOfBoundsY for maps that do not set one.
func LevelTuning(kind movement.Kind, level *leveldata.Level) movement.Tuning {
	return Tuning(kind, level.OutOfBounds(Physics.OutOfBoundsY))
}

// CharacterSettings converts the character and follow camera sections.
func CharacterSettings() movement.CharacterSettings {
	return movement.CharacterSettings{
		GroundSpeed: Character.GroundSpeed,
		AirSpeed:    Character.AirSpeed,
		JumpSpeed:   Character.JumpSpeed,
		TurnRate:    Character.TurnRate,
		JumpPolicy:  Character.JumpPolicy,
		Follow: movement.FollowSettings{
			Distance:    FollowCamera.Distance,
			Height:      FollowCamera.Height,
			AimHeight:   FollowCamera.AimHeight,
			Rate:        FollowCamera.Rate,
			Sensitivity: FollowCamera.Sensitivity,
			MinPitch:    gamemath.DegToRad(FollowCamera.MinPitchDeg),
			MaxPitch:    gamemath.DegToRad(FollowCamera.MaxPitchDeg),
		},
	}
}

// CameraSettings converts the camera-driven section.
func CameraSettings() movement.CameraSettings {
	return movement.CameraSettings{
		GroundSpeed: CameraDriven.GroundSpeed,
		AirSpeed:    CameraDriven.AirSpeed,
		JumpSpeed:   CameraDriven.JumpSpeed,
		Sensitivity: CameraDriven.Sensitivity,
		MaxPitch:    gamemath.DegToRad(CameraDriven.MaxPitchDeg),
		MeshOffsetY: CameraDriven.MeshOffsetY,
		JumpPolicy:  CameraDriven.JumpPolicy,
	}
}

// Driver returns the frame substep driver.
func Driver() movement.Driver {
	return movement.Driver{SubSteps: Frame.SubSteps, MaxFrameDelta: Frame.MaxFrameDelta}
}

// FOV returns the vertical field of view in radians.
func (v ViewConfig) FOV() float64 {
	return v.FOVDeg * math.Pi / 180
}
