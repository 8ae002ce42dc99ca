package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestMotionModeNext(t *testing.T) {
	tests := []struct {
		name      string
		mode      MotionMode
		completed bool
		want      MotionMode
	}{
		{"wrapping never flips", WrappingMode(), true, WrappingMode()},
		{"no cycle keeps direction", BackAndForthMode(Forward), false, BackAndForthMode(Forward)},
		{"forward flips", BackAndForthMode(Forward), true, BackAndForthMode(Backward)},
		{"backward flips", BackAndForthMode(Backward), true, BackAndForthMode(Forward)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.mode.Next(tt.completed))
		})
	}
}

func TestMotionModeEffective(t *testing.T) {
	assert.InDelta(t, 0.25, WrappingMode().Effective(0.25), 1e-9)
	assert.InDelta(t, 0.25, BackAndForthMode(Forward).Effective(0.25), 1e-9)
	assert.InDelta(t, 0.75, BackAndForthMode(Backward).Effective(0.25), 1e-9)
}

func TestBackAndForthRoundTrip(t *testing.T) {
	a := dmath.NewVec2(-10, 5)
	b := dmath.NewVec2(10, 7)
	mode := BackAndForthMode(Forward)

	start := Lerp(a, b, mode.Effective(0))
	assert.Equal(t, a, start)

	mode = mode.Next(true)
	assert.Equal(t, b, Lerp(a, b, mode.Effective(0)))

	mode = mode.Next(true)
	assert.Equal(t, BackAndForthMode(Forward), mode)
	assert.Equal(t, start, Lerp(a, b, mode.Effective(0)))
}

func TestAdvanceCycle(t *testing.T) {
	next, cycles := AdvanceCycle(0, 0.5, 2)
	assert.InDelta(t, 0.5, next, 1e-9)
	assert.Equal(t, 0, cycles)

	next, cycles = AdvanceCycle(1.5, 0.75, 2)
	assert.InDelta(t, 0.25, next, 1e-9)
	assert.Equal(t, 1, cycles)

	next, cycles = AdvanceCycle(0, 4.5, 2)
	assert.InDelta(t, 0.5, next, 1e-9)
	assert.Equal(t, 2, cycles)

	next, cycles = AdvanceCycle(1, 1, 0)
	assert.Equal(t, 0.0, next)
	assert.Equal(t, 0, cycles)
}

func TestSeveralCyclesInOneTickFlipOnce(t *testing.T) {
	elapsed, cycles := AdvanceCycle(0, 4, 2)
	assert.InDelta(t, 0, elapsed, 1e-9)
	assert.Equal(t, 2, cycles)

	mode := BackAndForthMode(Forward).Next(cycles > 0)
	assert.Equal(t, Backward, mode.Direction)
}

func TestLerp(t *testing.T) {
	got := Lerp(dmath.NewVec2(0, 0), dmath.NewVec2(10, -20), 0.5)
	assert.InDelta(t, 5, got.X, 1e-9)
	assert.InDelta(t, -10, got.Y, 1e-9)
}
