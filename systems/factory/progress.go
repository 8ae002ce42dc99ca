package factory

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/automoto/skyhop/archetypes"
	"github.com/automoto/skyhop/components"
	cfg "github.com/automoto/skyhop/config"
	"github.com/automoto/skyhop/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ErrInvalidSpacing means platforms would be generated without a vertical
// gap, so the catch-up loop could never finish.
var ErrInvalidSpacing = errors.New("platform min distance must be positive")

// CreateProgress creates the frontier state with both frontiers at 0.
func CreateProgress(ecs *ecs.ECS) *donburi.Entry {
	progress := archetypes.Progress.Spawn(ecs)
	components.Progress.SetValue(progress, components.ProgressData{})
	return progress
}

// CreateClock creates the timestep singleton.
func CreateClock(ecs *ecs.ECS, delta float64) *donburi.Entry {
	clock := archetypes.Clock.Spawn(ecs)
	components.Clock.SetValue(clock, components.ClockData{Delta: delta})
	return clock
}

// CreateSpawner builds the generator distributions from config. An invalid
// distribution means the configuration is broken, so it panics.
func CreateSpawner(ecs *ecs.ECS, r *rand.Rand) *donburi.Entry {
	data, err := NewSpawnerData(r)
	if err != nil {
		panic(fmt.Errorf("spawner: %w", err))
	}

	spawner := archetypes.Spawner.Spawn(ecs)
	components.Spawner.SetValue(spawner, data)
	return spawner
}

// NewSpawnerData validates and builds the generator distributions.
func NewSpawnerData(r *rand.Rand) (components.SpawnerData, error) {
	if cfg.Platform.MinDistance <= 0 {
		return components.SpawnerData{}, fmt.Errorf("%w: %v", ErrInvalidSpacing, cfg.Platform.MinDistance)
	}
	platformX, err := gamemath.Symmetric(cfg.Platform.JitterX)
	if err != nil {
		return components.SpawnerData{}, fmt.Errorf("platform jitter: %w", err)
	}
	offset, err := gamemath.NewUniform(cfg.Hazard.OffsetLow, cfg.Hazard.OffsetHigh)
	if err != nil {
		return components.SpawnerData{}, fmt.Errorf("hazard offset: %w", err)
	}
	enemyX, err := gamemath.NewNormal(0, cfg.Hazard.EnemyStdDevX)
	if err != nil {
		return components.SpawnerData{}, fmt.Errorf("enemy x: %w", err)
	}
	enemyY, err := gamemath.NewNormal(0, cfg.Hazard.EnemyStdDevY)
	if err != nil {
		return components.SpawnerData{}, fmt.Errorf("enemy y: %w", err)
	}

	return components.SpawnerData{
		Rand:         r,
		PlatformX:    platformX,
		HazardOffset: offset,
		EnemyX:       enemyX,
		EnemyY:       enemyY,
	}, nil
}
