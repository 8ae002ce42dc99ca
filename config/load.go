package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

var ErrUnknownKeys = errors.New("unknown config keys")

// fileConfig is the layout of a tuning override file. Every table is
// optional; missing keys keep their current value.
type fileConfig struct {
	Window   Config         `toml:"window"`
	Physics  PhysicsConfig  `toml:"physics"`
	Player   PlayerConfig   `toml:"player"`
	Platform PlatformConfig `toml:"platform"`
	Hazard   HazardConfig   `toml:"hazard"`
	Camera   CameraConfig   `toml:"camera"`
	World    WorldConfig    `toml:"world"`
	Debug    DebugConfig    `toml:"debug"`
}

// Load applies a TOML override file on top of the current configuration.
// Nothing is applied when the file fails to decode or has unknown keys.
func Load(path string) error {
	f := fileConfig{
		Window:   *C,
		Physics:  Physics,
		Player:   Player,
		Platform: Platform,
		Hazard:   Hazard,
		Camera:   Camera,
		World:    World,
		Debug:    Debug,
	}

	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("%s: %w: %s", path, ErrUnknownKeys, strings.Join(keys, ", "))
	}
	if err := f.validate(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	window := f.Window
	C = &window
	Physics = f.Physics
	Player = f.Player
	Platform = f.Platform
	Hazard = f.Hazard
	Camera = f.Camera
	World = f.World
	Debug = f.Debug
	return nil
}

func (f *fileConfig) validate() error {
	switch {
	case f.Window.TPS <= 0:
		return errors.New("window.tps must be positive")
	case f.Platform.MinDistance <= 0:
		return errors.New("platform.min_distance must be positive")
	case f.Hazard.SpikeChanceDen <= 0 || f.Hazard.EnemyChanceDen <= 0:
		return errors.New("hazard chance denominators must be positive")
	case f.Hazard.EnemyCycleSeconds <= 0:
		return errors.New("hazard.enemy_cycle_seconds must be positive")
	}
	return nil
}
