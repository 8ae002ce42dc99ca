package systems

import (
	"github.com/automoto/skyhop/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHeight raises the height frontier to the player's height. The
// frontier never goes back down.
func UpdateHeight(ecs *ecs.ECS) {
	player, ok := mustSinglePlayer(ecs.World)
	if !ok {
		return
	}

	y := components.Position.Get(player).Y
	progress := GetOrCreateProgress(ecs)
	if y >= progress.HeightFrontier {
		progress.HeightFrontier = y
	}
}
