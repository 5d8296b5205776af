package factory

import (
	"github.com/automoto/capsulerun/archetypes"
	"github.com/automoto/capsulerun/components"
	"github.com/automoto/capsulerun/shared/collision"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace exposes the world's broad-phase grid to the debug overlay.
func CreateSpace(ecs *ecs.ECS, world *collision.World) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	if s := world.Space(); s != nil {
		components.Space.Set(space, s)
	}
	return space
}
