package systems

import (
	"image/color"

	"github.com/automoto/skyhop/components"
	"github.com/automoto/skyhop/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	v, ok := newView(ecs, screen)
	if !ok {
		return
	}

	objectQuery.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		if !v.visible(obj.X, obj.Y, obj.W, obj.H) {
			return
		}

		// Determine color based on tags
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvPlatform) {
			c = color.RGBA{100, 100, 100, 255} // Grey
		} else if obj.HasTags(tags.ResolvPlayer) {
			c = color.RGBA{0, 0, 255, 255} // Blue
		} else if obj.HasTags(tags.ResolvHazard) {
			c = color.RGBA{255, 0, 0, 255} // Red
		}

		x, y, w, h := v.rect(obj.X, obj.Y, obj.W, obj.H)
		vector.StrokeRect(screen, x, y, w, h, 1, c, false)
	})

	// Patrol paths
	components.Line.Each(ecs.World, func(e *donburi.Entry) {
		line := components.Line.Get(e)
		ax, ay := v.point(line.A.X, line.A.Y)
		bx, by := v.point(line.B.X, line.B.Y)
		vector.StrokeLine(screen, float32(ax), float32(ay), float32(bx), float32(by), 1,
			color.RGBA{255, 255, 0, 255}, false)
	})
}
