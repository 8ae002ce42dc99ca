package systems

import (
	"github.com/automoto/skyhop/components"
	cfg "github.com/automoto/skyhop/config"
	"github.com/automoto/skyhop/shared/gamemath"
	"github.com/automoto/skyhop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/filter"
)

var (
	platformQuery = donburi.NewQuery(filter.Contains(tags.Platform, components.Position, components.CollisionBox))
	hazardQuery   = donburi.NewQuery(filter.Contains(tags.DamageSource, components.Position, components.CollisionBox))
)

// UpdateJumping bounces the player off platforms while not ascending, and
// applies gravity otherwise.
func UpdateJumping(ecs *ecs.ECS) {
	player, ok := findPlayer(ecs.World)
	if !ok {
		return
	}

	vel := components.Velocity.Get(player)
	pos := components.Position.Get(player).Vec2
	box := components.CollisionBox.Get(player).Box

	if vel.Y <= cfg.Physics.JumpEpsilon && touchesAny(ecs.World, platformQuery, box, pos) {
		vel.Y = cfg.Physics.JumpVelocity
		TriggerSquashStretch(player, cfg.SquashStretch.JumpScaleX, cfg.SquashStretch.JumpScaleY)
		return
	}
	vel.Y = gamemath.Fall(vel.Y, cfg.Physics.Gravity, cfg.Physics.MaxFallSpeed, delta(ecs))
}

// touchesAny tests box against every entity matched by q. Brute force is
// fine for the handful of entities alive at once.
func touchesAny(w donburi.World, q *donburi.Query, box gamemath.Box, pos dmath.Vec2) bool {
	hit := false
	q.Each(w, func(e *donburi.Entry) {
		if hit {
			return
		}
		other := components.CollisionBox.Get(e).Box
		otherPos := components.Position.Get(e).Vec2
		hit = gamemath.Overlaps(box, pos, other, otherPos)
	})
	return hit
}
