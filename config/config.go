package config

import (
	"image/color"

	"github.com/automoto/firstperson/controller"
	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer.
const Default ecs.LayerID = 0

// Config holds general window configuration.
type Config struct {
	Width  int
	Height int
	Title  string
	TPS    int
}

// PhysicsConfig contains character integration values.
type PhysicsConfig struct {
	Gravity      float64 // m/s², pulls along -Z
	MaxFallSpeed float64 // m/s

	// resolv works in integer cells, so world metres are scaled into
	// space units.
	SpaceScale float64 // space units per metre
	CellSize   int     // space units
}

// CharacterConfig is the shape of the character controller.
type CharacterConfig struct {
	Radius  float64
	Height  float64
	Capsule bool
}

// CameraConfig contains the top-down debug view settings.
type CameraConfig struct {
	PixelsPerMetre  float64
	FollowSmoothing float64 // 0..1 per frame
}

// TuningConfig contains live tuning key behaviour.
type TuningConfig struct {
	SensitivityStep float64 // multiplier per key press
	MinSensitivity  float64
	MaxSensitivity  float64
}

// LoggingConfig selects the logger level and format.
type LoggingConfig struct {
	Level  string
	Format string
}

// LevelConfig selects the level file inside the level filesystem.
type LevelConfig struct {
	Path string
}

// DebugConfig contains debug/testing options.
type DebugConfig struct {
	Enabled bool // draw collision cells and colliders
}

// UIConfig contains HUD layout and colours.
type UIConfig struct {
	HUDMargin     float64
	HUDLineHeight float64
	HUDFontSize   float64
	HUDTextColor  color.RGBA
	HUDWarnColor  color.RGBA
	HUDPanelColor color.RGBA

	PauseOverlayColor color.RGBA

	PlayerColor     color.RGBA
	FacingColor     color.RGBA
	ObstacleLow     color.RGBA // rests on the floor
	ObstacleHigh    color.RGBA // overhang
	ObstacleMoving  color.RGBA
	BackgroundColor color.RGBA
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Character CharacterConfig
var Camera CameraConfig
var Tuning TuningConfig
var Logging LoggingConfig
var Level LevelConfig
var Debug DebugConfig
var UI UIConfig

// Player is the controller tuning applied to newly spawned players.
var Player controller.Config

// Shared RGBA colours.
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	Grey         = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	Reset()
}

// Reset restores every global to its default.
func Reset() {
	C = &Config{
		Width:  960,
		Height: 540,
		Title:  "First Person",
		TPS:    60,
	}

	Physics = PhysicsConfig{
		Gravity:      9.81,
		MaxFallSpeed: 20,
		SpaceScale:   16,
		CellSize:     16,
	}

	Character = CharacterConfig{
		Radius:  1.0,
		Height:  1.8,
		Capsule: true,
	}

	Camera = CameraConfig{
		PixelsPerMetre:  24,
		FollowSmoothing: 0.2,
	}

	Tuning = TuningConfig{
		SensitivityStep: 1.25,
		MinSensitivity:  0.0002,
		MaxSensitivity:  0.02,
	}

	Logging = LoggingConfig{
		Level:  "info",
		Format: "console",
	}

	Level = LevelConfig{
		Path: "levels/arena.tmx",
	}

	Debug = DebugConfig{}

	UI = UIConfig{
		HUDMargin:     10,
		HUDLineHeight: 16,
		HUDFontSize:   12,
		HUDTextColor:  White,
		HUDWarnColor:  Orange,
		HUDPanelColor: BlackOverlay,

		PauseOverlayColor: BlackOverlay,

		PlayerColor:     LightBlue,
		FacingColor:     Yellow,
		ObstacleLow:     DarkBlue,
		ObstacleHigh:    Grey,
		ObstacleMoving:  Red,
		BackgroundColor: color.RGBA{R: 24, G: 24, B: 32, A: 255},
	}

	Player = controller.DefaultConfig()

	resetInput()
}
