package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/automoto/capsulerun/shared/leveldata"
	"github.com/automoto/capsulerun/shared/movement"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	reset()
	require.NoError(t, Validate())

	assert.Equal(t, 5, Frame.SubSteps)
	assert.Equal(t, 0.05, Frame.MaxFrameDelta)
	assert.Equal(t, 30.0, Physics.Gravity)
	assert.Equal(t, movement.JumpRepeat, Character.JumpPolicy)
	assert.Equal(t, movement.JumpOnce, CameraDriven.JumpPolicy)

	d := Driver()
	assert.Equal(t, movement.DefaultDriver(), d)

	tuning := Tuning(movement.CameraDriven, -25)
	assert.Equal(t, movement.DefaultTuning(), tuning)
}

func TestApplyYAMLOverlaysPresentKeys(t *testing.T) {
	reset()
	t.Cleanup(reset)

	err := ApplyYAML([]byte(`
physics:
  gravity: 9.8
character:
  jump_policy: once
input:
  movement:
    jump: [J]
`))
	require.NoError(t, err)

	assert.Equal(t, 9.8, Physics.Gravity)
	assert.Equal(t, 0.35, Physics.CapsuleRadius, "untouched keys keep their value")
	assert.Equal(t, movement.JumpOnce, Character.JumpPolicy)
	assert.Equal(t, []movement.Key{"J"}, Input.Movement.Jump)
	assert.Equal(t, []movement.Key{"W", "ArrowUp"}, Input.Movement.Forward)
	assert.NotEmpty(t, Input.Bindings)
}

func TestApplyYAMLRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero substeps", "frame: {sub_steps: 0}"},
		{"negative frame cap", "frame: {max_frame_delta: -1}"},
		{"negative radius", "physics: {capsule_radius: -0.1}"},
		{"inverted pitch", "follow_camera: {min_pitch_deg: 20, max_pitch_deg: 10}"},
		{"pitch past vertical", "camera_driven: {max_pitch_deg: 120}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reset()
			err := ApplyYAML([]byte(tt.yaml))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalid))
			assert.Equal(t, 5, Frame.SubSteps, "failed overrides are not applied")
		})
	}

	reset()
	err := ApplyYAML([]byte("character: {jump_policy: sometimes}"))
	assert.Error(t, err)
	assert.Equal(t, movement.JumpRepeat, Character.JumpPolicy)
}

func TestDefaultYAMLRoundTrip(t *testing.T) {
	reset()
	t.Cleanup(reset)

	data, err := DefaultYAML()
	require.NoError(t, err)
	assert.Contains(t, string(data), "jump_policy: repeat")

	path := filepath.Join(t.TempDir(), "capsulerun.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	Physics.Gravity = 1
	require.NoError(t, LoadOverrides(path))
	assert.Equal(t, 30.0, Physics.Gravity)
}

func TestLoadOverridesMissingFile(t *testing.T) {
	err := LoadOverrides(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestSettingsConversion(t *testing.T) {
	reset()
	cs := CharacterSettings()
	assert.InDelta(t, -1.0471975511965976, cs.Follow.MinPitch, 1e-12)
	assert.Equal(t, Character.TurnRate, cs.TurnRate)

	cam := CameraSettings()
	assert.InDelta(t, 1.5707963267948966, cam.MaxPitch, 1e-12)
	assert.Equal(t, -1.0, cam.MeshOffsetY)
}

func TestLevelTuningOutOfBounds(t *testing.T) {
	reset()
	t.Cleanup(reset)
	require.NoError(t, ApplyYAML([]byte("physics: {out_of_bounds_y: -40}")))

	plain := &leveldata.Level{OutOfBoundsY: leveldata.DefaultOutOfBoundsY}
	assert.Equal(t, -40.0, LevelTuning(movement.CharacterDriven, plain).OutOfBoundsY)

	own := &leveldata.Level{OutOfBoundsY: -12, HasOutOfBoundsY: true}
	assert.Equal(t, -12.0, LevelTuning(movement.CameraDriven, own).OutOfBoundsY)
}

func TestDefaultAimHeightNearFeet(t *testing.T) {
	reset()
	cs := CharacterSettings()
	assert.Less(t, cs.Follow.AimHeight, Physics.CapsuleHeight/2)
}
