package systems

import (
	"github.com/automoto/skyhop/components"
	cfg "github.com/automoto/skyhop/config"
	"github.com/automoto/skyhop/shared/gamemath"
	"github.com/automoto/skyhop/systems/factory"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateSpawner generates platforms, and sometimes hazards, until the
// populated height is ahead of the height frontier.
func UpdateSpawner(ecs *ecs.ECS) {
	entry, ok := components.Spawner.First(ecs.World)
	if !ok {
		return
	}
	spawnUntilQuiescent(ecs, GetOrCreateProgress(ecs), components.Spawner.Get(entry))
}

// spawnUntilQuiescent runs the catch-up loop and returns how many platforms
// it placed.
func spawnUntilQuiescent(ecs *ecs.ECS, progress *components.ProgressData, spawner *components.SpawnerData) int {
	bounds := cfg.Platform.SpawnBounds
	gap := cfg.Platform.MinDistance

	spawned := 0
	for progress.HeightFrontier+bounds >= progress.LastSpawnFrontier+gap {
		progress.LastSpawnFrontier = progress.HeightFrontier + bounds + gap
		height := progress.LastSpawnFrontier

		x := spawner.PlatformX.Sample(spawner.Rand)
		factory.CreatePlatform(ecs, x, height)

		// The starting platform never carries a hazard.
		if progress.WarmedUp {
			spawnHazards(ecs, spawner, x, height)
		}
		progress.WarmedUp = true
		spawned++
	}
	return spawned
}

func spawnHazards(ecs *ecs.ECS, spawner *components.SpawnerData, x, height float64) {
	r := spawner.Rand
	offset := spawner.HazardOffset.Sample(r)

	if gamemath.Chance(r, cfg.Hazard.SpikeChanceNum, cfg.Hazard.SpikeChanceDen) {
		factory.CreateSpike(ecs, dmath.NewVec2(x, height+offset))
	}

	if gamemath.Chance(r, cfg.Hazard.EnemyChanceNum, cfg.Hazard.EnemyChanceDen) {
		half := cfg.Hazard.EnemyHalfDistance
		a := dmath.NewVec2(-(half + spawner.EnemyX.Sample(r)), height+offset+spawner.EnemyY.Sample(r))
		b := dmath.NewVec2(half+spawner.EnemyX.Sample(r), height+offset+spawner.EnemyY.Sample(r))
		factory.CreateEnemy(ecs, a, b)
	}
}
