package factory

import (
	"github.com/automoto/skyhop/archetypes"
	"github.com/automoto/skyhop/components"
	cfg "github.com/automoto/skyhop/config"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func CreateCamera(ecs *ecs.ECS) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{
		Position: math.NewVec2(0, cfg.Camera.Offset),
		Zoom:     cfg.Camera.Zoom,
	})
}
