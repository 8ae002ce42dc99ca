package factory

import (
	"github.com/automoto/skyhop/archetypes"
	"github.com/automoto/skyhop/components"
	cfg "github.com/automoto/skyhop/config"
	"github.com/automoto/skyhop/logger"
	"github.com/automoto/skyhop/shared/gamemath"
	"github.com/automoto/skyhop/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreateSpike places a static hazard.
func CreateSpike(ecs *ecs.ECS, pos dmath.Vec2) *donburi.Entry {
	spike := archetypes.Spike.Spawn(ecs)
	placeBody(spike, pos, cfg.Hazard.SpikeExtents, "spike", tags.ResolvHazard)

	logger.Log.Debugw("spike placed", "x", pos.X, "y", pos.Y)
	return spike
}

// CreateEnemy places a hazard that patrols back and forth between a and b.
func CreateEnemy(ecs *ecs.ECS, a, b dmath.Vec2) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)
	placeBody(enemy, a, cfg.Hazard.EnemyExtents, "enemy", tags.ResolvHazard)

	components.Line.SetValue(enemy, components.LineData{A: a, B: b})
	components.Interpolator.SetValue(enemy, NewInterpolator(cfg.Hazard.EnemyCycleSeconds, gamemath.BackAndForthMode(gamemath.Forward)))

	logger.Log.Debugw("enemy placed", "from", a, "to", b)
	return enemy
}

// NewInterpolator builds a mover timer with a linear fraction curve.
func NewInterpolator(duration float64, mode gamemath.MotionMode) components.InterpolatorData {
	return components.InterpolatorData{
		Duration: duration,
		Mode:     mode,
		Curve:    gween.New(0, 1, float32(duration), ease.Linear),
	}
}
