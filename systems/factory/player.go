package factory

import (
	"github.com/automoto/capsulerun/archetypes"
	"github.com/automoto/capsulerun/components"
	cfg "github.com/automoto/capsulerun/config"
	"github.com/automoto/capsulerun/shared/leveldata"
	"github.com/automoto/capsulerun/shared/movement"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewStrategy builds the movement strategy for a variant. sensitivity scales
// the configured mouse sensitivity.
func NewStrategy(kind movement.Kind, level *leveldata.Level, sensitivity float64) movement.Strategy {
	switch kind {
	case movement.CameraDriven:
		s := cfg.CameraSettings()
		s.Sensitivity *= sensitivity
		c := movement.NewCamera(s)
		c.Face(level.Spawn.Facing)
		return c
	default:
		s := cfg.CharacterSettings()
		s.Follow.Sensitivity *= sensitivity
		return movement.NewCharacter(s, level.Spawn.Facing)
	}
}

// CreatePlayer spawns the capsule on the level's spawn point.
func CreatePlayer(ecs *ecs.ECS, level *leveldata.Level, kind movement.Kind, sensitivity float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	spawn := level.SpawnCapsule(cfg.Physics.CapsuleRadius, cfg.Physics.CapsuleHeight)
	ctrl := movement.NewController(
		NewStrategy(kind, level, sensitivity),
		spawn,
		cfg.LevelTuning(kind, level),
		cfg.Input.Movement,
	)
	components.Controller.Set(player, &components.ControllerData{
		Controller: ctrl,
		Driver:     cfg.Driver(),
	})

	pose := ctrl.Pose()
	components.Avatar.Set(player, &components.AvatarData{
		Position: pose.MeshPosition,
		Yaw:      pose.MeshYaw,
		Hidden:   kind == movement.CameraDriven,
	})

	log.Debug().
		Str("level", level.Name).
		Str("variant", kind.String()).
		Float64("spawn_x", spawn.Start.X()).
		Float64("spawn_y", spawn.Start.Y()).
		Float64("spawn_z", spawn.Start.Z()).
		Msg("player spawned")

	return player
}

// SetSensitivity rescales the configured mouse sensitivity of a running strategy.
func SetSensitivity(s movement.Strategy, scale float64) {
	switch st := s.(type) {
	case *movement.Character:
		st.Settings.Follow.Sensitivity = cfg.FollowCamera.Sensitivity * scale
	case *movement.Camera:
		st.Settings.Sensitivity = cfg.CameraDriven.Sensitivity * scale
	}
}
