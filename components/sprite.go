package components

import (
	"github.com/yohamta/donburi"
)

// SpriteData names the visual an entity is drawn with ("player", "platform",
// "spike", "enemy"). The simulation never reads it.
type SpriteData struct {
	Key string
}

var Sprite = donburi.NewComponentType[SpriteData]()
