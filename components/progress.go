package components

import "github.com/yohamta/donburi"

// ProgressData tracks how far the session has climbed and how far the
// world has been populated.
type ProgressData struct {
	// HeightFrontier is the highest player y seen so far. It never decreases.
	HeightFrontier float64
	// LastSpawnFrontier is the height of the most recently generated platform.
	LastSpawnFrontier float64
	// WarmedUp is set once the first platform has been generated.
	WarmedUp bool
}

var Progress = donburi.NewComponentType[ProgressData]()
