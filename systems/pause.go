package systems

import (
	"github.com/automoto/firstperson/archetypes"
	"github.com/automoto/firstperson/components"
	cfg "github.com/automoto/firstperson/config"
	"github.com/automoto/firstperson/fonts"
	"github.com/automoto/firstperson/logger"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// SetCursorCaptured grabs or frees the mouse. Replaced in tests.
var SetCursorCaptured = func(captured bool) {
	if captured {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}
}

// UpdatePause toggles pause on the pause key. The mouse is freed while paused.
// This system should run BEFORE UpdateInput.
func UpdatePause(e *ecs.ECS) {
	pause := GetOrCreatePause(e)

	pressed := Poller.KeyPressed(cfg.Input.HotKeys.Pause)
	justPressed := pressed && !pause.Pressed
	pause.Pressed = pressed
	if !justPressed {
		return
	}

	pause.IsPaused = !pause.IsPaused
	SetCursorCaptured(!pause.IsPaused)
	if !pause.IsPaused {
		// Rebase the cursor so travel while paused is not read as look input.
		Poller.Poll()
	}
	logger.L().Debug("Pause toggled", "paused", pause.IsPaused)
}

// WithGameplayChecks wraps a system so it only runs while not paused.
func WithGameplayChecks(system func(*ecs.ECS)) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		if IsPaused(e) {
			return
		}
		system(e)
	}
}

// IsPaused reports whether gameplay is suspended.
func IsPaused(e *ecs.ECS) bool {
	entry, ok := components.Pause.First(e.World)
	if !ok {
		return false
	}
	return components.Pause.Get(entry).IsPaused
}

// GetOrCreatePause returns the singleton Pause component, creating if needed
func GetOrCreatePause(e *ecs.ECS) *components.PauseData {
	entry, ok := components.Pause.First(e.World)
	if !ok {
		entry = archetypes.Pause.Spawn(e)
	}
	return components.Pause.Get(entry)
}

// DrawPause renders the pause overlay.
func DrawPause(e *ecs.ECS, screen *ebiten.Image) {
	if !IsPaused(e) {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	// Draw semi-transparent overlay
	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.UI.PauseOverlayColor, false)

	if !fonts.Loaded(fonts.HUD) {
		return
	}
	title := "Paused"
	// Center text horizontally (approximate width calculation)
	x := int((width - float64(len(title))*cfg.UI.HUDFontSize*0.6) / 2)
	text.Draw(screen, title, fonts.HUD.Get(), x, int(height/2), cfg.UI.HUDTextColor)

	hint := "Esc to resume"
	x = int((width - float64(len(hint))*cfg.UI.HUDFontSize*0.5) / 2)
	text.Draw(screen, hint, fonts.HUDSmall.Get(), x, int(height/2+cfg.UI.HUDLineHeight), cfg.UI.HUDTextColor)
}
