package scenes

import (
	"image/color"
	"math/rand"
	"sync"
	"time"

	cfg "github.com/automoto/skyhop/config"
	"github.com/automoto/skyhop/logger"
	"github.com/automoto/skyhop/systems"
	"github.com/automoto/skyhop/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// JumperScene runs one endless-jumper session.
type JumperScene struct {
	ecs  *ecs.ECS
	seed int64
	once sync.Once
	over bool
}

// NewJumperScene creates a session. A zero seed draws one from the clock.
func NewJumperScene(seed int64) *JumperScene {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &JumperScene{seed: seed}
}

func (js *JumperScene) Update() {
	js.once.Do(js.configure)

	systems.SetDelta(js.ecs, 1/float64(ebiten.TPS()))
	js.ecs.Update()

	if gameOver, ok := systems.IsGameOver(js.ecs); ok && !js.over {
		js.over = true
		logger.Log.Infow("session finished",
			"height", gameOver.FinalHeight,
			"tick", gameOver.Tick,
			"seed", js.seed,
		)
	}
}

func (js *JumperScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if js.ecs == nil {
		return
	}
	js.ecs.Draw(screen)
}

func (js *JumperScene) configure() {
	js.ecs = NewWorld(rand.New(rand.NewSource(js.seed)))

	// Add renderers
	js.ecs.AddRenderer(cfg.Default, systems.DrawWorld)
	js.ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	js.ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	js.ecs.AddRenderer(cfg.Default, systems.DrawPause)

	logger.Log.Infow("session started", "seed", js.seed)
}

// NewWorld builds the simulation with its systems and starting entities.
// Renderers are left to the caller.
func NewWorld(r *rand.Rand) *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdatePause)

	systems.AddSimulation(e)

	factory.CreateClock(e, 1/float64(cfg.C.TPS))
	factory.CreateProgress(e)
	factory.CreateSpawner(e, r)
	factory.CreateCamera(e)
	factory.CreatePlayer(e)

	return e
}
