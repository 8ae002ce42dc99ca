package factory

import (
	"github.com/automoto/skyhop/archetypes"
	"github.com/automoto/skyhop/components"
	cfg "github.com/automoto/skyhop/config"
	"github.com/automoto/skyhop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlayer(ecs *ecs.ECS) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	placeBody(player, cfg.Player.SpawnOffset, cfg.Player.Extents, "player", tags.ResolvPlayer)
	components.Velocity.SetValue(player, components.VelocityData{Vec2: cfg.Player.SpawnVelocity})

	return player
}
