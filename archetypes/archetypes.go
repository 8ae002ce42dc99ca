package archetypes

import (
	"github.com/automoto/skyhop/components"
	cfg "github.com/automoto/skyhop/config"
	"github.com/automoto/skyhop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Position,
		components.Velocity,
		components.CollisionBox,
		components.Object,
		components.Sprite,
	)
	Platform = newArchetype(
		tags.Platform,
		components.Position,
		components.CollisionBox,
		components.Object,
		components.Sprite,
	)
	Spike = newArchetype(
		tags.DamageSource,
		tags.Spike,
		components.Position,
		components.CollisionBox,
		components.Object,
		components.Sprite,
	)
	Enemy = newArchetype(
		tags.DamageSource,
		tags.Enemy,
		components.Position,
		components.CollisionBox,
		components.Line,
		components.Interpolator,
		components.Object,
		components.Sprite,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Progress = newArchetype(
		components.Progress,
	)
	Spawner = newArchetype(
		components.Spawner,
	)
	Clock = newArchetype(
		components.Clock,
	)
	GameOver = newArchetype(
		components.GameOver,
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
