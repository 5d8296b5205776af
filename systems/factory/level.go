package factory

import (
	"github.com/automoto/capsulerun/archetypes"
	"github.com/automoto/capsulerun/assets"
	"github.com/automoto/capsulerun/components"
	cfg "github.com/automoto/capsulerun/config"
	"github.com/automoto/capsulerun/shared/leveldata"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var loader = assets.NewLevelLoader()

// LevelList returns every embedded level in switcher order.
func LevelList() []*leveldata.Level {
	return loader.MustLoadLevels()
}

// CreateLevel loads the named level and builds its collision world. An unknown
// name falls back to the first embedded level.
func CreateLevel(ecs *ecs.ECS, name string) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)

	data, ok := loader.Level(name)
	if !ok {
		names := loader.Names()
		if len(names) == 0 {
			panic("no levels found in assets/levels directory")
		}
		log.Warn().Str("level", name).Str("fallback", names[0]).Msg("unknown level")
		data = loader.MustLoadLevel(names[0])
	}

	world := data.BuildWorld(cfg.Physics.CellSize)
	components.Level.Set(level, &components.LevelData{
		CurrentLevel: data,
		World:        world,
	})
	log.Info().
		Str("level", data.Name).
		Int("triangles", len(world.Triangles())).
		Msg("level loaded")

	return level
}
