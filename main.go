package main

import (
	"flag"
	"log"

	"github.com/automoto/skyhop/config"
	"github.com/automoto/skyhop/fonts"
	"github.com/automoto/skyhop/logger"
	"github.com/automoto/skyhop/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame(seed int64) *Game {
	return &Game{
		scene: scenes.NewJumperScene(seed),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "path to a TOML file overriding the defaults")
	logPath := flag.String("log", "", "log file (stderr when empty)")
	debug := flag.Bool("debug", false, "verbose logging and collision outlines")
	seed := flag.Int64("seed", 0, "generator seed (0 picks one from the clock)")
	flag.Parse()

	if err := logger.Init(*logPath, *debug); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if *configPath != "" {
		if err := config.Load(*configPath); err != nil {
			logger.Log.Fatalw("failed to load config", "path", *configPath, "error", err)
		}
	}
	if *debug {
		config.Debug.ShowHitboxes = true
	}
	if *seed == 0 {
		*seed = config.Debug.Seed
	}

	if err := fonts.LoadDefaults(); err != nil {
		logger.Log.Fatalw("failed to load fonts", "error", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("skyhop")
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame(*seed)); err != nil {
		logger.Log.Fatalw("game exited", "error", err)
	}
}
