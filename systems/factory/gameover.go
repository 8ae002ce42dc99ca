package factory

import (
	"github.com/automoto/skyhop/archetypes"
	"github.com/automoto/skyhop/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGameOver records the end of the session.
func CreateGameOver(ecs *ecs.ECS, finalHeight float64, tick int) *donburi.Entry {
	gameOver := archetypes.GameOver.Spawn(ecs)
	components.GameOver.SetValue(gameOver, components.GameOverData{
		FinalHeight: finalHeight,
		Tick:        tick,
	})
	return gameOver
}
