package systems

import (
	"github.com/automoto/skyhop/components"
	"github.com/automoto/skyhop/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera eases the camera towards the height frontier. The camera
// stays where it is once the player is gone.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	if _, ok := mustSinglePlayer(e.World); !ok {
		return // no player (could be dead), skip camera update
	}

	progress := GetOrCreateProgress(e)
	targetX := 0.0
	targetY := progress.HeightFrontier + config.Camera.Offset

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}
