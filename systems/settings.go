package systems

import (
	"fmt"

	"github.com/automoto/firstperson/archetypes"
	"github.com/automoto/firstperson/components"
	cfg "github.com/automoto/firstperson/config"
	"github.com/automoto/firstperson/logger"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// statusFrames is how long a HUD status message stays up.
const statusFrames = 120

// UpdateSettings handles the host hot keys: debug view, reset, look
// sensitivity and saving tuning.
func UpdateSettings(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	keys := cfg.Input.HotKeys

	if justPressed(settings, keys.ToggleDebug) {
		settings.Debug = !settings.Debug
		cfg.Debug.Enabled = settings.Debug
	}
	if justPressed(settings, keys.Reset) {
		components.ResetRequestedEvent.Publish(e.World, components.ResetRequested{})
	}
	if justPressed(settings, keys.SensitivityUp) {
		adjustSensitivity(e.World, settings, cfg.Tuning.SensitivityStep)
	}
	if justPressed(settings, keys.SensitivityDown) {
		adjustSensitivity(e.World, settings, 1/cfg.Tuning.SensitivityStep)
	}
	if justPressed(settings, keys.SaveTuning) {
		if err := SaveTuning(TuningFrom(cfg.Player)); err != nil {
			setStatus(e.World, settings, "Could not save tuning")
		} else {
			setStatus(e.World, settings, "Tuning saved")
		}
	}
}

// GetOrCreateSettings returns the singleton Settings component, creating if needed
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = archetypes.Settings.Spawn(e)
		components.Settings.SetValue(entry, components.SettingsData{
			Debug:   cfg.Debug.Enabled,
			Pressed: make(map[ebiten.Key]bool),
		})
	}
	return components.Settings.Get(entry)
}

func justPressed(s *components.SettingsData, key ebiten.Key) bool {
	if s.Pressed == nil {
		s.Pressed = make(map[ebiten.Key]bool)
	}
	pressed := Poller.KeyPressed(key)
	prev := s.Pressed[key]
	s.Pressed[key] = pressed
	return pressed && !prev
}

// adjustSensitivity scales the look sensitivity and pushes the new config to
// every player as a property edit.
func adjustSensitivity(w donburi.World, s *components.SettingsData, factor float64) {
	c := cfg.Player
	c.RotationSpeed = mgl64.Clamp(c.RotationSpeed*factor, cfg.Tuning.MinSensitivity, cfg.Tuning.MaxSensitivity)
	cfg.Player = c

	components.PropertyChangedEvent.Publish(w, components.PropertyChanged{Config: c})
	setStatus(w, s, fmt.Sprintf("Sensitivity %.4f", c.RotationSpeed))
	logger.L().Info("Look sensitivity changed", "rotation_speed", c.RotationSpeed)
}

func setStatus(w donburi.World, s *components.SettingsData, msg string) {
	frame := uint64(0)
	if clock, ok := components.Clock.First(w); ok {
		frame = components.Clock.Get(clock).Frame
	}
	s.Status = msg
	s.StatusExpiry = frame + statusFrames
}
