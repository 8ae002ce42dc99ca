package systems

import (
	"github.com/automoto/skyhop/components"
	"github.com/yohamta/donburi/ecs"
)

// Simulation lists the per-tick simulation steps. The order matters: input
// is applied before integration, bounds after movement, and contact checks
// run last against the freshly spawned content.
var Simulation = []ecs.System{
	UpdatePlayerControl,
	UpdatePhysics,
	UpdateInterpolation,
	UpdateBounds,
	UpdateHeight,
	UpdateSpawner,
	UpdateJumping,
	UpdateDamage,
}

// AddSimulation registers the simulation steps, followed by the systems that
// react to a finished tick.
func AddSimulation(e *ecs.ECS) {
	for _, system := range Simulation {
		e.AddSystem(WithPauseCheck(system))
	}
	e.AddSystem(WithPauseCheck(UpdateObjects))
	e.AddSystem(WithPauseCheck(UpdateCamera))
	e.AddSystem(WithPauseCheck(UpdateEffects))
	e.AddSystem(WithPauseCheck(UpdateClock))
}

// UpdateClock counts completed ticks.
func UpdateClock(e *ecs.ECS) {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		return
	}
	components.Clock.Get(entry).Ticks++
}

// SetDelta sets the timestep used by the next tick.
func SetDelta(e *ecs.ECS, dt float64) {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		return
	}
	components.Clock.Get(entry).Delta = dt
}
