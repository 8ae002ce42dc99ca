package systems

import (
	"github.com/automoto/skyhop/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var kinematicQuery = donburi.NewQuery(filter.Contains(components.Position, components.Velocity))

// UpdatePhysics integrates velocity into position for every moving body.
func UpdatePhysics(ecs *ecs.ECS) {
	dt := delta(ecs)
	kinematicQuery.Each(ecs.World, func(e *donburi.Entry) {
		pos := components.Position.Get(e)
		vel := components.Velocity.Get(e)
		pos.X += vel.X * dt
		pos.Y += vel.Y * dt
	})
}
