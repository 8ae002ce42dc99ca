package systems

import (
	"github.com/automoto/skyhop/components"
	cfg "github.com/automoto/skyhop/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/features/math"
)

var spriteQuery = donburi.NewQuery(filter.Contains(
	components.Sprite,
	components.Object,
))

// view maps world space (y up) onto the screen (y down) around the camera.
type view struct {
	camera        math.Vec2
	zoom          float64
	width, height float64
}

func newView(e *ecs.ECS, screen *ebiten.Image) (view, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return view{}, false // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	zoom := camera.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	return view{
		camera: camera.Position,
		zoom:   zoom,
		width:  float64(screen.Bounds().Dx()),
		height: float64(screen.Bounds().Dy()),
	}, true
}

// point converts a world position to screen coordinates.
func (v view) point(x, y float64) (float64, float64) {
	sx := (x-v.camera.X)*v.zoom + v.width/2
	sy := (v.camera.Y-y)*v.zoom + v.height/2
	return sx, sy
}

// rect converts a world rectangle with its lower-left corner at (x, y) to
// the screen rectangle's top-left corner and size.
func (v view) rect(x, y, w, h float64) (float32, float32, float32, float32) {
	sx, sy := v.point(x, y+h)
	return float32(sx), float32(sy), float32(w * v.zoom), float32(h * v.zoom)
}

func (v view) visible(x, y, w, h float64) bool {
	sx, sy, sw, sh := v.rect(x, y, w, h)
	return sx+sw >= 0 && sx <= float32(v.width) && sy+sh >= 0 && sy <= float32(v.height)
}

// DrawWorld fills each body's rectangle with its sprite colour.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.HUD.BackgroundColor)

	v, ok := newView(e, screen)
	if !ok {
		return
	}

	spriteQuery.Each(e.World, func(entry *donburi.Entry) {
		o := components.Object.Get(entry)
		if !v.visible(o.X, o.Y, o.W, o.H) {
			return
		}
		c, ok := cfg.SpriteColors[components.Sprite.Get(entry).Key]
		if !ok {
			c = cfg.White
		}
		// Scale around the bottom-center so the body stays on its feet.
		sx, sy := squashStretchScale(entry)
		w, h := o.W*sx, o.H*sy
		x, y, sw, sh := v.rect(o.X+(o.W-w)/2, o.Y, w, h)
		vector.FillRect(screen, x, y, sw, sh, c, false)
	})
}
