package systems

import (
	"errors"
	"fmt"

	"github.com/automoto/skyhop/components"
	"github.com/automoto/skyhop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ErrMultiplePlayers means the world was built with more than one player.
var ErrMultiplePlayers = errors.New("more than one player entity")

// findPlayer returns the player if it is still alive.
func findPlayer(w donburi.World) (*donburi.Entry, bool) {
	return tags.Player.First(w)
}

// mustSinglePlayer is findPlayer for systems that rely on there being at
// most one player. A second player is a construction bug and panics.
func mustSinglePlayer(w donburi.World) (*donburi.Entry, bool) {
	var found *donburi.Entry
	count := 0
	tags.Player.Each(w, func(e *donburi.Entry) {
		count++
		found = e
	})
	if count > 1 {
		panic(fmt.Errorf("%w: found %d", ErrMultiplePlayers, count))
	}
	return found, count == 1
}

// delta returns the timestep of the current tick, or 0 without a clock.
func delta(e *ecs.ECS) float64 {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		return 0
	}
	return components.Clock.Get(entry).Delta
}

// GetOrCreateProgress returns the singleton Progress component, creating if needed.
func GetOrCreateProgress(e *ecs.ECS) *components.ProgressData {
	if _, ok := components.Progress.First(e.World); !ok {
		e.World.Entry(e.World.Create(components.Progress))
	}

	ent, _ := components.Progress.First(e.World)
	return components.Progress.Get(ent)
}

// IsGameOver reports whether the player has been removed.
func IsGameOver(e *ecs.ECS) (components.GameOverData, bool) {
	entry, ok := components.GameOver.First(e.World)
	if !ok {
		return components.GameOverData{}, false
	}
	return *components.GameOver.Get(entry), true
}
