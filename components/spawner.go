package components

import (
	"math/rand"

	"github.com/automoto/skyhop/shared/gamemath"
	"github.com/yohamta/donburi"
)

// SpawnerData holds the random source and the distributions used by the
// procedural generator. Distributions are built once at startup.
type SpawnerData struct {
	Rand *rand.Rand

	PlatformX    gamemath.Uniform
	HazardOffset gamemath.Uniform
	EnemyX       gamemath.Normal
	EnemyY       gamemath.Normal
}

var Spawner = donburi.NewComponentType[SpawnerData]()
