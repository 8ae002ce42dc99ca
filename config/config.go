package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// Default is the only render layer.
const Default ecs.LayerID = 0

// PhysicsConfig contains the player movement constants.
type PhysicsConfig struct {
	JumpVelocity           float64 `toml:"jump_velocity"`
	Gravity                float64 `toml:"gravity"`
	MaxFallSpeed           float64 `toml:"max_fall_speed"`
	HorizontalAcceleration float64 `toml:"horizontal_acceleration"`
	MaxHorizontalSpeed     float64 `toml:"max_horizontal_speed"`

	// Vertical speed at or below which the player counts as not ascending
	// and may bounce off a platform.
	JumpEpsilon float64 `toml:"jump_epsilon"`
}

// PlayerConfig contains player spawn values
type PlayerConfig struct {
	Extents       dmath.Vec2 `toml:"extents"` // half-extents of the collision box
	SpawnOffset   dmath.Vec2 `toml:"spawn_offset"`
	SpawnVelocity dmath.Vec2 `toml:"spawn_velocity"`
}

// PlatformConfig contains procedural platform generation values
type PlatformConfig struct {
	CollisionExtents dmath.Vec2 `toml:"collision_extents"`
	MinDistance      float64    `toml:"min_distance"` // vertical gap between generated platforms
	SpawnBounds      float64    `toml:"spawn_bounds"` // how far above the frontier content is generated
	JitterX          float64    `toml:"jitter_x"`     // platforms land in Uniform(-JitterX, JitterX)
}

// HazardConfig contains hazard generation values
type HazardConfig struct {
	SpikeExtents dmath.Vec2 `toml:"spike_extents"`
	EnemyExtents dmath.Vec2 `toml:"enemy_extents"`

	// Probabilities are expressed as Num/Den.
	SpikeChanceNum int `toml:"spike_chance_num"`
	SpikeChanceDen int `toml:"spike_chance_den"`
	EnemyChanceNum int `toml:"enemy_chance_num"`
	EnemyChanceDen int `toml:"enemy_chance_den"`

	OffsetLow  float64 `toml:"offset_low"` // hazard height above its platform
	OffsetHigh float64 `toml:"offset_high"`

	EnemyHalfDistance float64 `toml:"enemy_half_distance"` // half length of the patrol line
	EnemyStdDevX      float64 `toml:"enemy_stddev_x"`
	EnemyStdDevY      float64 `toml:"enemy_stddev_y"`
	EnemyCycleSeconds float64 `toml:"enemy_cycle_seconds"` // time to travel the patrol line once
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	Offset          float64 `toml:"offset"`           // added to the height frontier
	FollowSmoothing float64 `toml:"follow_smoothing"` // how fast camera follows the frontier (0.0-1.0)
	Zoom            float64 `toml:"zoom"`
}

// WorldConfig describes the playfield
type WorldConfig struct {
	ScreenWidth float64 `toml:"screen_width"` // world units; the player is kept within ±ScreenWidth/2
}

// SquashStretchConfig contains squash/stretch effect configuration
type SquashStretchConfig struct {
	JumpScaleX float64 // horizontal scale on bounce (< 1 = narrower)
	JumpScaleY float64 // vertical scale on bounce (> 1 = taller)
	LerpSpeed  float64 // how fast to return to normal scale
}

// HUDConfig contains overlay colours and layout
type HUDConfig struct {
	Margin          float64
	TextColor       color.RGBA
	GameOverColor   color.RGBA
	OverlayColor    color.RGBA
	BackgroundColor color.RGBA
}

// Config holds general game configuration
type Config struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
	TPS    int `toml:"tps"`
}

// DebugConfig contains debug command-line options
type DebugConfig struct {
	ShowHitboxes bool  `toml:"show_hitboxes"`
	Seed         int64 `toml:"seed"` // 0 seeds from the clock
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Player PlayerConfig
var Platform PlatformConfig
var Hazard HazardConfig
var Camera CameraConfig
var World WorldConfig
var SquashStretch SquashStretchConfig
var HUD HUDConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	SkyBlue      = color.RGBA{R: 24, G: 32, B: 60, A: 255}
)

// Sprite colours keyed by visual key
var SpriteColors = map[string]color.RGBA{
	"player":   {R: 100, G: 180, B: 255, A: 255},
	"platform": {R: 120, G: 200, B: 120, A: 255},
	"spike":    {R: 200, G: 200, B: 210, A: 255},
	"enemy":    {R: 255, G: 80, B: 80, A: 255},
}

func init() {
	Reset()
}

// Reset restores every configuration value to its default.
func Reset() {
	C = &Config{
		Width:  360,
		Height: 640,
		TPS:    60,
	}

	Physics = PhysicsConfig{
		JumpVelocity:           40.0,
		Gravity:                10.0,
		MaxFallSpeed:           60.0,
		HorizontalAcceleration: 125.0,
		MaxHorizontalSpeed:     30.0,
		JumpEpsilon:            0.1,
	}

	Player = PlayerConfig{
		Extents:       dmath.NewVec2(20, 30),
		SpawnOffset:   dmath.NewVec2(0, 20),
		SpawnVelocity: dmath.NewVec2(0, 10),
	}

	Platform = PlatformConfig{
		// Platforms share the player's collision box.
		CollisionExtents: dmath.NewVec2(20, 30),
		MinDistance:      128,
		SpawnBounds:      175,
		JitterX:          10,
	}

	Hazard = HazardConfig{
		SpikeExtents:      dmath.NewVec2(10, 10),
		EnemyExtents:      dmath.NewVec2(15, 15),
		SpikeChanceNum:    1,
		SpikeChanceDen:    4,
		EnemyChanceNum:    1,
		EnemyChanceDen:    7,
		OffsetLow:         20,
		OffsetHigh:        30,
		EnemyHalfDistance: 10,
		EnemyStdDevX:      3.5,
		EnemyStdDevY:      2.0,
		EnemyCycleSeconds: 2.0,
	}

	Camera = CameraConfig{
		Offset:          60,
		FollowSmoothing: 0.1,
		Zoom:            1.0,
	}

	World = WorldConfig{
		ScreenWidth: 256, // arbitrary, not tied to the window size
	}

	// Squash/Stretch Config
	SquashStretch = SquashStretchConfig{
		JumpScaleX: 0.7,
		JumpScaleY: 1.5,
		LerpSpeed:  0.10,
	}

	HUD = HUDConfig{
		Margin:          10,
		TextColor:       White,
		GameOverColor:   LightRed,
		OverlayColor:    BlackOverlay,
		BackgroundColor: SkyBlue,
	}

	Debug = DebugConfig{
		ShowHitboxes: false,
	}
}
