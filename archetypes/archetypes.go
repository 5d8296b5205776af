package archetypes

import (
	"github.com/automoto/capsulerun/components"
	cfg "github.com/automoto/capsulerun/config"
	"github.com/automoto/capsulerun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Controller,
		components.Avatar,
	)
	Camera = newArchetype(
		tags.Camera,
		components.View,
	)
	Level = newArchetype(
		tags.Level,
		components.Level,
	)
	Space = newArchetype(
		components.Space,
	)
	Fade = newArchetype(
		components.Fade,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
