package systems

import (
	"github.com/automoto/skyhop/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var objectQuery = donburi.NewQuery(filter.Contains(
	components.Object,
	components.Position,
	components.CollisionBox,
))

// UpdateObjects moves each resolv body to match its entity's position.
func UpdateObjects(ecs *ecs.ECS) {
	objectQuery.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		pos := components.Position.Get(e)
		box := components.CollisionBox.Get(e)
		obj.X = pos.X - box.Width
		obj.Y = pos.Y - box.Height
		obj.Update()
	})
}
