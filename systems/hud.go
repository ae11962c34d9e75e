package systems

import (
	"fmt"
	"math"

	"github.com/automoto/firstperson/components"
	"github.com/automoto/firstperson/config"
	"github.com/automoto/firstperson/fonts"
	"github.com/automoto/firstperson/shared/gamemath"
	"github.com/automoto/firstperson/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const hudPanelWidth = 220

// HUDLines returns the text shown for the first player, one entry per line.
func HUDLines(e *ecs.ECS) []string {
	entry, ok := tags.Player.First(e.World)
	if !ok {
		return nil
	}
	pd := components.Player.Get(entry)
	if pd.Controller == nil {
		return nil
	}
	st := pd.Controller.State()
	c := components.Character.Get(entry)

	lines := []string{
		fmt.Sprintf("State: %s", st.PlayerState),
		fmt.Sprintf("Stance: %s", st.CurrentStance),
		fmt.Sprintf("Yaw: %.0f  Pitch: %.0f", degrees(gamemath.YawOf(st.CurrentYaw)), degrees(CameraPitch(entry))),
		fmt.Sprintf("Eye: %.2f m", EyeHeight(entry)),
		fmt.Sprintf("Sensitivity: %.4f", pd.Controller.Config().RotationSpeed),
	}
	if !c.OnGround {
		lines = append(lines, "Airborne")
	}
	return lines
}

// DrawHUD renders the controller readout and any status message in the
// top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	if !fonts.Loaded(fonts.HUD) {
		return
	}
	lines := HUDLines(e)
	if len(lines) == 0 {
		return
	}

	margin := float32(config.UI.HUDMargin)
	lineHeight := config.UI.HUDLineHeight

	extra := 0
	entry, _ := tags.Player.First(e.World)
	blocked := components.Player.Get(entry).Blocked
	if blocked {
		extra++
	}
	settings := GetOrCreateSettings(e)
	status := activeStatus(e, settings)
	if status != "" {
		extra++
	}

	panelHeight := float32(float64(len(lines)+extra)*lineHeight) + margin
	vector.FillRect(screen, margin/2, margin/2, hudPanelWidth, panelHeight, config.UI.HUDPanelColor, false)

	face := fonts.HUD.Get()
	y := config.UI.HUDMargin + lineHeight
	for _, line := range lines {
		text.Draw(screen, line, face, int(margin), int(y), config.UI.HUDTextColor)
		y += lineHeight
	}
	if blocked {
		text.Draw(screen, "Stand blocked", face, int(margin), int(y), config.UI.HUDWarnColor)
		y += lineHeight
	}
	if status != "" {
		text.Draw(screen, status, fonts.HUDSmall.Get(), int(margin), int(y), config.UI.HUDWarnColor)
	}
}

// activeStatus returns the status message if it has not expired.
func activeStatus(e *ecs.ECS, s *components.SettingsData) string {
	if s.Status == "" {
		return ""
	}
	if GetOrCreateClock(e).Frame >= s.StatusExpiry {
		return ""
	}
	return s.Status
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
