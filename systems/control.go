package systems

import (
	"github.com/automoto/skyhop/components"
	cfg "github.com/automoto/skyhop/config"
	"github.com/automoto/skyhop/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayerControl accelerates the player horizontally from held input.
func UpdatePlayerControl(ecs *ecs.ECS) {
	player, ok := findPlayer(ecs.World)
	if !ok {
		return
	}

	input := getOrCreateInput(ecs)
	velocity := components.Velocity.Get(player)
	velocity.X = gamemath.Accelerate(
		velocity.X,
		cfg.Physics.HorizontalAcceleration,
		cfg.Physics.MaxHorizontalSpeed,
		delta(ecs),
		HorizontalDirection(input),
	)
}

// HorizontalDirection resolves held input to -1 (left), 1 (right) or 0.
// Holding both directions cancels out.
func HorizontalDirection(input *components.InputData) int {
	left := input.Current[cfg.ActionMoveLeft]
	right := input.Current[cfg.ActionMoveRight]
	switch {
	case left && !right:
		return -1
	case right && !left:
		return 1
	}
	return 0
}
