package systems

import (
	"github.com/automoto/capsulerun/components"
	cfg "github.com/automoto/capsulerun/config"
	"github.com/automoto/capsulerun/shared/movement"
	"github.com/automoto/capsulerun/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi/ecs"
)

// UpdateController runs one rendered frame of the character controller:
// mouse look, then every substep against the level's collision world.
func UpdateController(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	world := components.Level.Get(levelEntry).World
	ctrl := components.Controller.Get(playerEntry)
	input := getOrCreateInput(ecs)

	if GetAction(input, cfg.ActionReset).JustPressed {
		ctrl.Reset()
		ctrl.Resets++
		startFade(ecs)
		log.Info().Str("variant", ctrl.Strategy.Kind().String()).Msg("manual reset")
	}

	frameDelta := 1.0 / float64(ebiten.TPS())
	reset := ctrl.Frame(input.Movement(), frameDelta, world, ctrl.Driver, func(_ float64, r movement.StepResult) {
		ctrl.Steps++
		ctrl.LastContact = r.Contact
		ctrl.LastHit = r.Hit
	})
	if reset {
		ctrl.Resets++
		startFade(ecs)
		log.Info().
			Str("variant", ctrl.Strategy.Kind().String()).
			Float64("threshold", ctrl.Tuning.OutOfBoundsY).
			Int("resets", ctrl.Resets).
			Msg("out of bounds, respawned")
	}

	pose := ctrl.Pose()
	avatar := components.Avatar.Get(playerEntry)
	avatar.Position = pose.MeshPosition
	avatar.Yaw = pose.MeshYaw
}
