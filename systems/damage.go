package systems

import (
	"github.com/automoto/skyhop/components"
	"github.com/automoto/skyhop/logger"
	"github.com/automoto/skyhop/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDamage removes the player on contact with any damage source. This
// ends the session.
func UpdateDamage(ecs *ecs.ECS) {
	player, ok := findPlayer(ecs.World)
	if !ok {
		return
	}

	pos := components.Position.Get(player).Vec2
	box := components.CollisionBox.Get(player).Box
	if !touchesAny(ecs.World, hazardQuery, box, pos) {
		return
	}

	progress := GetOrCreateProgress(ecs)
	tick := 0
	if entry, ok := components.Clock.First(ecs.World); ok {
		tick = components.Clock.Get(entry).Ticks
	}

	ecs.World.Remove(player.Entity())
	factory.CreateGameOver(ecs, progress.HeightFrontier, tick)
	logger.Log.Infow("player died",
		"x", pos.X,
		"y", pos.Y,
		"height", progress.HeightFrontier,
		"tick", tick,
	)
}
