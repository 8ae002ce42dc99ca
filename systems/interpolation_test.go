package systems

import (
	"testing"

	"github.com/automoto/skyhop/components"
	"github.com/automoto/skyhop/shared/gamemath"
	"github.com/automoto/skyhop/systems/factory"
	"github.com/stretchr/testify/assert"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestUpdateInterpolationBackAndForth(t *testing.T) {
	e := newTestECS(t, 1)
	enemy := factory.CreateEnemy(e, dmath.NewVec2(-10, 0), dmath.NewVec2(10, 0))
	components.Interpolator.Get(enemy).Duration = 2
	components.Interpolator.Get(enemy).Curve = nil
	SetDelta(e, 1)

	steps := []struct {
		x   float64
		dir gamemath.Direction
	}{
		{0, gamemath.Forward},
		{10, gamemath.Backward},
		{0, gamemath.Backward},
		{-10, gamemath.Forward},
		{0, gamemath.Forward},
	}
	for i, step := range steps {
		UpdateInterpolation(e)
		assert.InDelta(t, step.x, components.Position.Get(enemy).X, 1e-6, "step %d", i)
		assert.Equal(t, step.dir, components.Interpolator.Get(enemy).Mode.Direction, "step %d", i)
	}
}

func TestUpdateInterpolationLongTickFlipsOnce(t *testing.T) {
	e := newTestECS(t, 1)
	enemy := factory.CreateEnemy(e, dmath.NewVec2(-10, 0), dmath.NewVec2(10, 0))
	components.Interpolator.Get(enemy).Duration = 2
	SetDelta(e, 4)

	UpdateInterpolation(e)
	assert.Equal(t, gamemath.Backward, components.Interpolator.Get(enemy).Mode.Direction)
	assert.InDelta(t, 10, components.Position.Get(enemy).X, 1e-4)
}

func TestUpdateInterpolationWrapping(t *testing.T) {
	e := newTestECS(t, 1)
	enemy := factory.CreateEnemy(e, dmath.NewVec2(0, 0), dmath.NewVec2(0, 40))
	*components.Interpolator.Get(enemy) = factory.NewInterpolator(4, gamemath.WrappingMode())
	SetDelta(e, 1)

	want := []float64{10, 20, 30, 0, 10}
	for i, y := range want {
		UpdateInterpolation(e)
		assert.InDelta(t, y, components.Position.Get(enemy).Y, 1e-4, "step %d", i)
	}
}

func TestUpdateInterpolationZeroDuration(t *testing.T) {
	e := newTestECS(t, 1)
	enemy := factory.CreateEnemy(e, dmath.NewVec2(3, 4), dmath.NewVec2(10, 0))
	components.Interpolator.Get(enemy).Duration = 0

	UpdateInterpolation(e)
	assert.Equal(t, dmath.NewVec2(3, 4), components.Position.Get(enemy).Vec2)
}
