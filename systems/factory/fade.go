package factory

import (
	"github.com/automoto/capsulerun/archetypes"
	"github.com/automoto/capsulerun/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateFade(ecs *ecs.ECS) *donburi.Entry {
	fade := archetypes.Fade.Spawn(ecs)
	components.Fade.Set(fade, &components.FadeData{})
	return fade
}
