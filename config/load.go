package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/automoto/firstperson/controller"
	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

var ErrInvalidSettings = errors.New("invalid settings")

// Settings is the YAML form of the tunable configuration. Fields missing from
// a file keep the value they had before decoding.
type Settings struct {
	Window    WindowSettings    `yaml:"window"`
	Player    PlayerSettings    `yaml:"player"`
	Character CharacterSettings `yaml:"character"`
	Physics   PhysicsSettings   `yaml:"physics"`
	Logging   LoggingSettings   `yaml:"logging"`
	Level     LevelSettings     `yaml:"level"`
}

type WindowSettings struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type PlayerSettings struct {
	WalkSpeed              float64    `yaml:"walk_speed"`
	SprintSpeed            float64    `yaml:"sprint_speed"`
	JumpHeight             float64    `yaml:"jump_height"`
	RotationSpeed          float64    `yaml:"rotation_speed"`
	CameraOffsetStanding   mgl64.Vec3 `yaml:"camera_offset_standing,flow"`
	CameraOffsetCrouching  mgl64.Vec3 `yaml:"camera_offset_crouching,flow"`
	CapsuleHeightStanding  float64    `yaml:"capsule_height_standing"`
	CapsuleHeightCrouching float64    `yaml:"capsule_height_crouching"`
	CapsuleGroundOffset    float64    `yaml:"capsule_ground_offset"`
	PitchMax               float64    `yaml:"pitch_max"`
	PitchMin               float64    `yaml:"pitch_min"`
}

type CharacterSettings struct {
	Radius  float64 `yaml:"radius"`
	Height  float64 `yaml:"height"`
	Capsule bool    `yaml:"capsule"`
}

type PhysicsSettings struct {
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
}

type LoggingSettings struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type LevelSettings struct {
	Path string `yaml:"path"`
}

// Current captures the globals as Settings.
func Current() Settings {
	return Settings{
		Window: WindowSettings{Width: C.Width, Height: C.Height, Title: C.Title},
		Player: playerSettings(Player),
		Character: CharacterSettings{
			Radius:  Character.Radius,
			Height:  Character.Height,
			Capsule: Character.Capsule,
		},
		Physics: PhysicsSettings{Gravity: Physics.Gravity, MaxFallSpeed: Physics.MaxFallSpeed},
		Logging: LoggingSettings{Level: Logging.Level, Format: Logging.Format},
		Level:   LevelSettings{Path: Level.Path},
	}
}

// Controller converts the player section to a controller config.
func (p PlayerSettings) Controller() controller.Config {
	return controller.Config{
		WalkSpeed:              p.WalkSpeed,
		SprintSpeed:            p.SprintSpeed,
		JumpHeight:             p.JumpHeight,
		RotationSpeed:          p.RotationSpeed,
		CameraOffsetStanding:   p.CameraOffsetStanding,
		CameraOffsetCrouching:  p.CameraOffsetCrouching,
		CapsuleHeightStanding:  p.CapsuleHeightStanding,
		CapsuleHeightCrouching: p.CapsuleHeightCrouching,
		CapsuleGroundOffset:    p.CapsuleGroundOffset,
		PitchMax:               p.PitchMax,
		PitchMin:               p.PitchMin,
	}
}

func playerSettings(c controller.Config) PlayerSettings {
	return PlayerSettings{
		WalkSpeed:              c.WalkSpeed,
		SprintSpeed:            c.SprintSpeed,
		JumpHeight:             c.JumpHeight,
		RotationSpeed:          c.RotationSpeed,
		CameraOffsetStanding:   c.CameraOffsetStanding,
		CameraOffsetCrouching:  c.CameraOffsetCrouching,
		CapsuleHeightStanding:  c.CapsuleHeightStanding,
		CapsuleHeightCrouching: c.CapsuleHeightCrouching,
		CapsuleGroundOffset:    c.CapsuleGroundOffset,
		PitchMax:               c.PitchMax,
		PitchMin:               c.PitchMin,
	}
}

// Validate checks the sections the controller and window depend on.
func (s Settings) Validate() error {
	if err := s.Player.Controller().Validate(); err != nil {
		return fmt.Errorf("player: %w", err)
	}
	switch {
	case s.Window.Width <= 0 || s.Window.Height <= 0:
		return fmt.Errorf("%w: window %dx%d", ErrInvalidSettings, s.Window.Width, s.Window.Height)
	case s.Character.Radius <= 0 || s.Character.Height <= 0:
		return fmt.Errorf("%w: character radius and height must be positive", ErrInvalidSettings)
	case s.Physics.Gravity < 0 || s.Physics.MaxFallSpeed <= 0:
		return fmt.Errorf("%w: physics gravity %v, max fall %v", ErrInvalidSettings, s.Physics.Gravity, s.Physics.MaxFallSpeed)
	}
	return nil
}

// Decode reads YAML over the current globals and validates the result.
// The globals are not modified; call Apply for that.
func Decode(r io.Reader) (Settings, error) {
	s := Current()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Settings{}, fmt.Errorf("decode settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Load reads and validates a settings file.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("read settings %s: %w", path, err)
	}
	s, err := Decode(bytes.NewReader(data))
	if err != nil {
		return Settings{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Apply copies s into the globals.
func Apply(s Settings) {
	C.Width, C.Height, C.Title = s.Window.Width, s.Window.Height, s.Window.Title
	Player = s.Player.Controller()
	Character = CharacterConfig{Radius: s.Character.Radius, Height: s.Character.Height, Capsule: s.Character.Capsule}
	Physics.Gravity = s.Physics.Gravity
	Physics.MaxFallSpeed = s.Physics.MaxFallSpeed
	Logging = LoggingConfig{Level: s.Logging.Level, Format: s.Logging.Format}
	Level.Path = s.Level.Path
}

// Marshal renders s as YAML.
func (s Settings) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}
