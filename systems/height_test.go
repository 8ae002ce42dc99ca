package systems

import (
	"testing"

	"github.com/automoto/skyhop/components"
	"github.com/stretchr/testify/assert"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestUpdateHeightIsMonotonic(t *testing.T) {
	e := newTestECS(t, 1)
	player := placePlayer(e, dmath.NewVec2(0, 0), dmath.NewVec2(0, 0))
	pos := components.Position.Get(player)

	heights := []float64{10, 50, 20, -100, 50, 75.5, 0}
	want := []float64{10, 50, 50, 50, 50, 75.5, 75.5}
	for i, y := range heights {
		pos.Y = y
		UpdateHeight(e)
		assert.Equal(t, want[i], progressOf(e).HeightFrontier, "step %d", i)
	}
}

func TestUpdateHeightIgnoresNegativeStart(t *testing.T) {
	e := newTestECS(t, 1)
	placePlayer(e, dmath.NewVec2(0, -20), dmath.NewVec2(0, 0))

	UpdateHeight(e)
	assert.Zero(t, progressOf(e).HeightFrontier)
}

func TestUpdateHeightWithoutPlayer(t *testing.T) {
	e := newTestECS(t, 1)
	progressOf(e).HeightFrontier = 42

	UpdateHeight(e)
	assert.Equal(t, 42.0, progressOf(e).HeightFrontier)
}

func TestUpdateHeightRejectsSecondPlayer(t *testing.T) {
	e := newTestECS(t, 1)
	placePlayer(e, dmath.NewVec2(0, 0), dmath.NewVec2(0, 0))
	placePlayer(e, dmath.NewVec2(0, 10), dmath.NewVec2(0, 0))

	assert.PanicsWithError(t, "more than one player entity: found 2", func() {
		UpdateHeight(e)
	})
}
