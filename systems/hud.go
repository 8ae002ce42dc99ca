package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/skyhop/components"
	cfg "github.com/automoto/skyhop/config"
	"github.com/automoto/skyhop/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the height counter and, once the player is gone, the
// game over banner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	progress, ok := components.Progress.First(ecs.World)
	if !ok {
		return
	}
	height := components.Progress.Get(progress).HeightFrontier

	op := &text.DrawOptions{}
	op.GeoM.Translate(cfg.HUD.Margin, cfg.HUD.Margin)
	op.ColorScale.ScaleWithColor(cfg.HUD.TextColor)
	text.Draw(screen, fmt.Sprintf("HEIGHT %d", int(height)), fonts.Regular.Get(), op)

	gameOver, over := IsGameOver(ecs)
	if !over {
		return
	}

	w := float64(screen.Bounds().Dx())
	h := float64(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, float32(w), float32(h), cfg.HUD.OverlayColor, false)
	drawCentered(screen, "GAME OVER", fonts.Title.Get(), w/2, h/2, cfg.HUD.GameOverColor)
	drawCentered(screen, fmt.Sprintf("reached %d", int(gameOver.FinalHeight)),
		fonts.Small.Get(), w/2, h/2+32, cfg.HUD.TextColor)
}

// drawCentered draws s with its center at (x, y).
func drawCentered(screen *ebiten.Image, s string, face text.Face, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, s, face, op)
}
