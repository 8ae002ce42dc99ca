package components

import (
	"github.com/automoto/skyhop/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// LineData is the patrol path of a moving hazard.
type LineData struct {
	A, B dmath.Vec2
}

var Line = donburi.NewComponentType[LineData]()

// InterpolatorData drives an entity along its Line.
type InterpolatorData struct {
	Duration float64 // seconds per cycle
	Elapsed  float64 // seconds into the current cycle
	Mode     gamemath.MotionMode

	// Curve maps elapsed time onto the cycle fraction.
	Curve *gween.Tween
}

var Interpolator = donburi.NewComponentType[InterpolatorData]()
