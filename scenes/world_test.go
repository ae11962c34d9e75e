package scenes

import (
	"testing"

	"github.com/automoto/firstperson/assets"
	"github.com/automoto/firstperson/components"
	cfg "github.com/automoto/firstperson/config"
	"github.com/automoto/firstperson/controller"
	"github.com/automoto/firstperson/systems"
	"github.com/automoto/firstperson/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// idlePoller reports no input.
type idlePoller struct{}

func (idlePoller) Poll()                               {}
func (idlePoller) KeyPressed(ebiten.Key) bool          { return false }
func (idlePoller) CursorDelta() (float64, float64)     { return 0, 0 }
func (idlePoller) Gamepads() []ebiten.GamepadID        { return nil }
func (idlePoller) GamepadName(ebiten.GamepadID) string { return "" }
func (idlePoller) GamepadAxis(ebiten.GamepadID, ebiten.StandardGamepadAxis) float64 {
	return 0
}
func (idlePoller) GamepadButtonPressed(ebiten.GamepadID, ebiten.StandardGamepadButton) bool {
	return false
}

func TestWorldSceneBuildsArena(t *testing.T) {
	cfg.Reset()
	t.Cleanup(cfg.Reset)
	prev := systems.Poller
	systems.Poller = idlePoller{}
	t.Cleanup(func() { systems.Poller = prev })

	ws := NewWorldScene(assets.Levels(), "levels/arena.tmx", nil)
	for i := 0; i < 30; i++ {
		if err := ws.Update(); err != nil {
			t.Fatalf("Update: %v", err)
		}
	}

	w := ws.ECS().World
	entry, ok := tags.Player.First(w)
	if !ok {
		t.Fatal("no player spawned")
	}
	pos := components.Transform.Get(entry).Position
	if pos[0] != 20 || pos[1] != 15 || pos[2] != 0 {
		t.Errorf("idle player moved to %v, want (20, 15, 0)", pos)
	}
	if st := components.Player.Get(entry).Controller.State(); st.CurrentStance != controller.Standing {
		t.Errorf("stance = %v, want standing", st.CurrentStance)
	}

	obstacles := 0
	tags.Obstacle.Each(w, func(*donburi.Entry) { obstacles++ })
	if obstacles != 10 {
		t.Errorf("obstacles = %d, want 10", obstacles)
	}
}

func TestWorldSceneMissingLevel(t *testing.T) {
	cfg.Reset()
	t.Cleanup(cfg.Reset)

	ws := NewWorldScene(assets.Levels(), "levels/nope.tmx", nil)
	if err := ws.Update(); err == nil {
		t.Fatal("expected an error for a missing level")
	}
	if err := ws.Update(); err == nil {
		t.Error("the configure error should persist")
	}
}
