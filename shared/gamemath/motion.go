package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Direction is the travel direction of a back-and-forth mover.
type Direction int

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// MotionKind selects how a mover restarts after a cycle.
type MotionKind int

const (
	// Wrapping jumps back to the start of the line every cycle.
	Wrapping MotionKind = iota
	// BackAndForth reverses along the line every cycle.
	BackAndForth
)

// MotionMode is Wrapping or BackAndForth(direction). Direction is ignored for
// Wrapping.
type MotionMode struct {
	Kind      MotionKind
	Direction Direction
}

// WrappingMode returns the sawtooth mode.
func WrappingMode() MotionMode {
	return MotionMode{Kind: Wrapping}
}

// BackAndForthMode returns the ping-pong mode starting in dir.
func BackAndForthMode(dir Direction) MotionMode {
	return MotionMode{Kind: BackAndForth, Direction: dir}
}

// Next returns the mode after a tick. Back-and-forth movers flip once when
// the tick completed a cycle, however many it completed.
func (m MotionMode) Next(completed bool) MotionMode {
	if m.Kind != BackAndForth || !completed {
		return m
	}
	if m.Direction == Forward {
		m.Direction = Backward
	} else {
		m.Direction = Forward
	}
	return m
}

// Effective maps a cycle fraction onto the line parameter for this mode.
func (m MotionMode) Effective(t float64) float64 {
	if m.Kind == BackAndForth && m.Direction == Backward {
		return 1 - t
	}
	return t
}

// Lerp linearly interpolates between a and b.
func Lerp(a, b dmath.Vec2, t float64) dmath.Vec2 {
	return dmath.NewVec2(a.X+(b.X-a.X)*t, a.Y+(b.Y-a.Y)*t)
}

// AdvanceCycle adds dt to elapsed inside a repeating period and returns the
// new elapsed time (in [0, period)) along with the number of cycles completed.
func AdvanceCycle(elapsed, dt, period float64) (next float64, cycles int) {
	if period <= 0 {
		return 0, 0
	}
	next = elapsed + dt
	if next < period {
		return next, 0
	}
	cycles = int(next / period)
	next = math.Mod(next, period)
	return next, cycles
}
