package systems

import (
	"testing"

	"github.com/automoto/firstperson/components"
	cfg "github.com/automoto/firstperson/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

func captureCursor(t *testing.T) *[]bool {
	t.Helper()
	var calls []bool
	prev := SetCursorCaptured
	SetCursorCaptured = func(captured bool) { calls = append(calls, captured) }
	t.Cleanup(func() { SetCursorCaptured = prev })
	return &calls
}

func TestPauseToggles(t *testing.T) {
	e, _ := newTestECS(t)
	poller := newFakePoller()
	usePoller(t, poller)
	calls := captureCursor(t)

	poller.keys[cfg.Input.HotKeys.Pause] = true
	UpdatePause(e)
	UpdatePause(e)
	if !IsPaused(e) {
		t.Fatal("pause key should pause once while held")
	}

	poller.keys[cfg.Input.HotKeys.Pause] = false
	UpdatePause(e)
	poller.keys[cfg.Input.HotKeys.Pause] = true
	UpdatePause(e)
	if IsPaused(e) {
		t.Error("second press should resume")
	}

	if len(*calls) != 2 || (*calls)[0] || !(*calls)[1] {
		t.Errorf("cursor capture calls = %v, want [false true]", *calls)
	}
	if poller.polls != 1 {
		t.Errorf("polls = %d, want one rebase on resume", poller.polls)
	}
}

func TestPauseFreezesGameplay(t *testing.T) {
	e, space := newTestECS(t)
	poller := newFakePoller()
	usePoller(t, poller)
	captureCursor(t)
	entry, _ := addPlayer(t, e, space, mgl64.Vec3{5, 5, 0})

	GetOrCreatePause(e).IsPaused = true
	poller.keys[ebiten.KeyW] = true
	for i := 0; i < 10; i++ {
		for _, system := range []func(*ecs.ECS){UpdateInput, UpdatePlayers, UpdateCharacters} {
			WithGameplayChecks(system)(e)
		}
	}

	if pos := components.Transform.Get(entry).Position; pos != (mgl64.Vec3{5, 5, 0}) {
		t.Errorf("paused player moved to %v", pos)
	}
}
