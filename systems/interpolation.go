package systems

import (
	"github.com/automoto/skyhop/components"
	"github.com/automoto/skyhop/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var interpolationQuery = donburi.NewQuery(filter.Contains(
	components.Line,
	components.Interpolator,
	components.Position,
))

// UpdateInterpolation moves every patrolling entity along its line.
func UpdateInterpolation(ecs *ecs.ECS) {
	dt := delta(ecs)
	interpolationQuery.Each(ecs.World, func(e *donburi.Entry) {
		line := components.Line.Get(e)
		interp := components.Interpolator.Get(e)

		var cycles int
		interp.Elapsed, cycles = gamemath.AdvanceCycle(interp.Elapsed, dt, interp.Duration)
		interp.Mode = interp.Mode.Next(cycles > 0)

		t := cycleFraction(interp)
		components.Position.Get(e).Vec2 = gamemath.Lerp(line.A, line.B, interp.Mode.Effective(t))
	})
}

// cycleFraction returns how far into the current cycle the timer is, in [0, 1).
func cycleFraction(interp *components.InterpolatorData) float64 {
	if interp.Duration <= 0 {
		return 0
	}
	if interp.Curve == nil {
		return interp.Elapsed / interp.Duration
	}
	t, _ := interp.Curve.Set(float32(interp.Elapsed))
	return float64(t)
}
