package systems

import (
	"testing"

	"github.com/automoto/skyhop/components"
	cfg "github.com/automoto/skyhop/config"
	"github.com/stretchr/testify/assert"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestHorizontalDirection(t *testing.T) {
	tests := []struct {
		name        string
		left, right bool
		want        int
	}{
		{"none", false, false, 0},
		{"left", true, false, -1},
		{"right", false, true, 1},
		{"both cancel", true, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := &components.InputData{}
			input.Current[cfg.ActionMoveLeft] = tt.left
			input.Current[cfg.ActionMoveRight] = tt.right
			assert.Equal(t, tt.want, HorizontalDirection(input))
		})
	}
}

func TestUpdatePlayerControlCapsSpeed(t *testing.T) {
	e := newTestECS(t, 1)
	player := placePlayer(e, dmath.NewVec2(0, 0), dmath.NewVec2(0, 0))
	SetDelta(e, 1)

	getOrCreateInput(e).Current[cfg.ActionMoveRight] = true
	UpdatePlayerControl(e)
	assert.Equal(t, cfg.Physics.MaxHorizontalSpeed, components.Velocity.Get(player).X)

	input := getOrCreateInput(e)
	input.Current[cfg.ActionMoveRight] = false
	input.Current[cfg.ActionMoveLeft] = true
	for i := 0; i < 5; i++ {
		UpdatePlayerControl(e)
		assert.LessOrEqual(t, components.Velocity.Get(player).X, cfg.Physics.MaxHorizontalSpeed)
		assert.GreaterOrEqual(t, components.Velocity.Get(player).X, -cfg.Physics.MaxHorizontalSpeed)
	}
	assert.Equal(t, -cfg.Physics.MaxHorizontalSpeed, components.Velocity.Get(player).X)
}

func TestUpdatePlayerControlNoInputKeepsSpeed(t *testing.T) {
	e := newTestECS(t, 1)
	player := placePlayer(e, dmath.NewVec2(0, 0), dmath.NewVec2(12, 0))

	UpdatePlayerControl(e)
	assert.Equal(t, 12.0, components.Velocity.Get(player).X)
}

func TestGetAction(t *testing.T) {
	input := &components.InputData{}
	input.Current[cfg.ActionPause] = true

	state := GetAction(input, cfg.ActionPause)
	assert.True(t, state.Pressed)
	assert.True(t, state.JustPressed)
	assert.False(t, state.JustReleased)

	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	state = GetAction(input, cfg.ActionPause)
	assert.False(t, state.Pressed)
	assert.True(t, state.JustReleased)
}
