package factory

import (
	"github.com/automoto/skyhop/archetypes"
	cfg "github.com/automoto/skyhop/config"
	"github.com/automoto/skyhop/logger"
	"github.com/automoto/skyhop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

func CreatePlatform(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)
	placeBody(platform, dmath.NewVec2(x, y), cfg.Platform.CollisionExtents, "platform", tags.ResolvPlatform)

	logger.Log.Debugw("platform placed", "x", x, "y", y)
	return platform
}
