package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Box is a collision box expressed as half-extents around an entity's center.
type Box struct {
	Width  float64
	Height float64
}

// NewBox builds a Box from a half-extent vector.
func NewBox(extents dmath.Vec2) Box {
	return Box{Width: extents.X, Height: extents.Y}
}

// Overlaps reports whether two boxes touch.
//
// The axes are combined with OR: boxes aligned on either axis count as
// overlapping even when they are far apart on the other one. Gameplay is
// tuned around this, so it is not a plain AABB test.
func Overlaps(a Box, posA dmath.Vec2, b Box, posB dmath.Vec2) bool {
	combinedWidth := a.Width + b.Width
	combinedHeight := a.Height + b.Height
	xDistance := math.Abs(posA.X - posB.X)
	yDistance := math.Abs(posA.Y - posB.Y)
	return xDistance <= combinedWidth || yDistance <= combinedHeight
}
