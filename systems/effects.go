package systems

import (
	"math"

	"github.com/automoto/skyhop/components"
	"github.com/automoto/skyhop/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects eases visual deformation back to normal.
func UpdateEffects(ecs *ecs.ECS) {
	updateSquashStretchEffects(ecs)
}

// updateSquashStretchEffects lerps scale values toward target and removes when normalized
func updateSquashStretchEffects(ecs *ecs.ECS) {
	var toRemove []*donburi.Entry

	components.SquashStretch.Each(ecs.World, func(e *donburi.Entry) {
		ss := components.SquashStretch.Get(e)

		ss.ScaleX += (ss.TargetX - ss.ScaleX) * ss.LerpSpeed
		ss.ScaleY += (ss.TargetY - ss.ScaleY) * ss.LerpSpeed

		threshold := 0.01
		if math.Abs(ss.ScaleX-ss.TargetX) < threshold && math.Abs(ss.ScaleY-ss.TargetY) < threshold {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		e.RemoveComponent(components.SquashStretch)
	}
}

// TriggerSquashStretch adds a squash/stretch effect to an entity
func TriggerSquashStretch(entry *donburi.Entry, scaleX, scaleY float64) {
	data := components.SquashStretchData{
		ScaleX:    scaleX,
		ScaleY:    scaleY,
		TargetX:   1.0,
		TargetY:   1.0,
		LerpSpeed: config.SquashStretch.LerpSpeed,
	}
	if !entry.HasComponent(components.SquashStretch) {
		entry.AddComponent(components.SquashStretch)
	}
	components.SquashStretch.SetValue(entry, data)
}

// squashStretchScale returns the draw scale of an entity, 1x1 without an
// active effect.
func squashStretchScale(entry *donburi.Entry) (float64, float64) {
	if !entry.HasComponent(components.SquashStretch) {
		return 1, 1
	}
	ss := components.SquashStretch.Get(entry)
	return ss.ScaleX, ss.ScaleY
}
