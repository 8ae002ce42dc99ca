package components

import (
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// VelocityData is integrated into Position every tick.
type VelocityData struct {
	dmath.Vec2
}

var Velocity = donburi.NewComponentType[VelocityData]()

// PositionData is the center of an entity in world units, y pointing up.
type PositionData struct {
	dmath.Vec2
}

var Position = donburi.NewComponentType[PositionData]()
