package systems

import (
	"github.com/automoto/skyhop/components"
	cfg "github.com/automoto/skyhop/config"
	"github.com/automoto/skyhop/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBounds keeps the player inside the playfield. Hitting a wall kills
// horizontal speed.
func UpdateBounds(ecs *ecs.ECS) {
	player, ok := findPlayer(ecs.World)
	if !ok {
		return
	}

	pos := components.Position.Get(player)
	box := components.CollisionBox.Get(player)
	allowed := cfg.World.ScreenWidth/2 - box.Width

	if x, clamped := gamemath.ClampToBound(pos.X, allowed); clamped {
		pos.X = x
		components.Velocity.Get(player).X = 0
	}
}
