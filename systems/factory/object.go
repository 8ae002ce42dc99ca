package factory

import (
	"github.com/automoto/skyhop/components"
	"github.com/automoto/skyhop/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// placeBody sets position, collision box and the mirrored resolv object of a
// freshly spawned entity.
func placeBody(e *donburi.Entry, pos, extents dmath.Vec2, sprite string, resolvTags ...string) {
	box := gamemath.NewBox(extents)
	components.Position.SetValue(e, components.PositionData{Vec2: pos})
	components.CollisionBox.SetValue(e, components.CollisionBoxData{Box: box})
	components.Sprite.SetValue(e, components.SpriteData{Key: sprite})

	obj := resolv.NewObject(pos.X-box.Width, pos.Y-box.Height, box.Width*2, box.Height*2, resolvTags...)
	obj.Data = e
	components.Object.SetValue(e, components.ObjectData{Object: obj})
}
