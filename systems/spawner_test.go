package systems

import (
	"testing"

	"github.com/automoto/skyhop/components"
	cfg "github.com/automoto/skyhop/config"
	"github.com/automoto/skyhop/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

func TestSpawnerFirstIterationHasNoHazards(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		e := newTestECS(t, seed)
		progress := progressOf(e)

		spawned := spawnUntilQuiescent(e, progress, spawnerOf(e))

		require.Equal(t, 1, spawned, "seed %d", seed)
		assert.Equal(t, 303.0, progress.LastSpawnFrontier)
		assert.True(t, progress.WarmedUp)
		assert.Equal(t, 1, platformQuery.Count(e.World))
		assert.Zero(t, hazardQuery.Count(e.World), "seed %d", seed)
	}
}

func TestSpawnerQuiescence(t *testing.T) {
	e := newTestECS(t, 7)
	progress := progressOf(e)

	for _, h := range []float64{0, 10, 500, 501, 10000, 10000, 25000.5} {
		progress.HeightFrontier = h
		before := progress.LastSpawnFrontier
		spawnUntilQuiescent(e, progress, spawnerOf(e))

		assert.Less(t,
			progress.HeightFrontier+cfg.Platform.SpawnBounds,
			progress.LastSpawnFrontier+cfg.Platform.MinDistance,
		)
		assert.GreaterOrEqual(t, progress.LastSpawnFrontier, before)
	}
}

func TestSpawnerIdleWhenFrontierUnchanged(t *testing.T) {
	e := newTestECS(t, 3)
	progress := progressOf(e)
	spawnUntilQuiescent(e, progress, spawnerOf(e))

	assert.Zero(t, spawnUntilQuiescent(e, progress, spawnerOf(e)))
	assert.Equal(t, 1, platformQuery.Count(e.World))
}

func TestSpawnerPlacesHazardsAfterWarmUp(t *testing.T) {
	e := newTestECS(t, 42)
	progress := progressOf(e)

	for i := 0; i < 300; i++ {
		progress.HeightFrontier += 1000
		spawnUntilQuiescent(e, progress, spawnerOf(e))
	}

	spikes := donburi.NewQuery(filter.Contains(tags.Spike))
	enemies := donburi.NewQuery(filter.Contains(tags.Enemy))
	assert.Positive(t, spikes.Count(e.World))
	assert.Positive(t, enemies.Count(e.World))
	assert.Equal(t, 300, platformQuery.Count(e.World))
}

func TestSpawnerHazardPlacement(t *testing.T) {
	e := newTestECS(t, 42)
	progress := progressOf(e)
	progress.WarmedUp = true

	for i := 0; i < 200; i++ {
		progress.HeightFrontier += 1000
		spawnUntilQuiescent(e, progress, spawnerOf(e))
	}

	tags.Spike.Each(e.World, func(entry *donburi.Entry) {
		pos := components.Position.Get(entry)
		assert.LessOrEqual(t, pos.X, cfg.Platform.JitterX)
		assert.GreaterOrEqual(t, pos.X, -cfg.Platform.JitterX)
	})

	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		line := components.Line.Get(entry)
		assert.Equal(t, line.A, components.Position.Get(entry).Vec2)
		assert.Equal(t, cfg.Hazard.EnemyCycleSeconds, components.Interpolator.Get(entry).Duration)
	})
}
