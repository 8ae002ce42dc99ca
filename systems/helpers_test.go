package systems

import (
	"math/rand"
	"testing"

	"github.com/automoto/skyhop/components"
	cfg "github.com/automoto/skyhop/config"
	"github.com/automoto/skyhop/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// newTestECS builds the simulation without keyboard polling or renderers.
func newTestECS(t *testing.T, seed int64) *ecs.ECS {
	t.Helper()
	t.Cleanup(cfg.Reset)

	e := ecs.NewECS(donburi.NewWorld())
	AddSimulation(e)

	factory.CreateClock(e, 1.0/60)
	factory.CreateProgress(e)
	factory.CreateSpawner(e, rand.New(rand.NewSource(seed)))
	factory.CreateCamera(e)
	return e
}

func placePlayer(e *ecs.ECS, pos, vel dmath.Vec2) *donburi.Entry {
	player := factory.CreatePlayer(e)
	components.Position.Get(player).Vec2 = pos
	components.Velocity.Get(player).Vec2 = vel
	return player
}

func progressOf(e *ecs.ECS) *components.ProgressData {
	return GetOrCreateProgress(e)
}

func spawnerOf(e *ecs.ECS) *components.SpawnerData {
	entry, _ := components.Spawner.First(e.World)
	return components.Spawner.Get(entry)
}
