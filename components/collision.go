package components

import (
	"github.com/automoto/skyhop/shared/gamemath"
	"github.com/yohamta/donburi"
)

// CollisionBoxData holds half-extents used for overlap tests only.
type CollisionBoxData struct {
	gamemath.Box
}

var CollisionBox = donburi.NewComponentType[CollisionBoxData]()
