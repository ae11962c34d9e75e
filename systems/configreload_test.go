package systems

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/automoto/firstperson/archetypes"
	"github.com/automoto/firstperson/components"
	cfg "github.com/automoto/firstperson/config"
	"github.com/go-gl/mathgl/mgl64"
)

func writeSettings(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReloadConfigUpdatesPlayers(t *testing.T) {
	e, space := newTestECS(t)
	_, p := addPlayer(t, e, space, mgl64.Vec3{5, 5, 0})
	path := writeSettings(t, "player:\n  walk_speed: 4.5\n")

	if err := ReloadConfig(e, path); err != nil {
		t.Fatalf("ReloadConfig: %v", err)
	}
	UpdateLifecycle(e)

	if p.Config().WalkSpeed != 4.5 {
		t.Errorf("walk speed = %v, want 4.5", p.Config().WalkSpeed)
	}
}

func TestReloadConfigRebuildsCharacters(t *testing.T) {
	e, space := newTestECS(t)
	entry, _ := addPlayer(t, e, space, mgl64.Vec3{5, 5, 0})
	UpdateLifecycle(e)
	UpdateLifecycle(e)
	path := writeSettings(t, "character:\n  radius: 0.8\n")

	if err := ReloadConfig(e, path); err != nil {
		t.Fatalf("ReloadConfig: %v", err)
	}
	UpdateLifecycle(e)
	UpdateLifecycle(e)

	c := components.Character.Get(entry)
	if c.Params.Radius != 0.8 {
		t.Errorf("radius = %v, want 0.8", c.Params.Radius)
	}
	if got := c.Body.Dims.SizeCollider[0]; !approx(got, 0.4) {
		t.Errorf("collider radius = %v, want 0.4", got)
	}
}

func TestReloadConfigRejectsBadFile(t *testing.T) {
	e, space := newTestECS(t)
	_, p := addPlayer(t, e, space, mgl64.Vec3{5, 5, 0})
	path := writeSettings(t, "player:\n  walk_speed: -1\n")

	if err := ReloadConfig(e, path); err == nil {
		t.Fatal("expected a validation error")
	}
	UpdateLifecycle(e)
	if p.Config().WalkSpeed != cfg.Player.WalkSpeed {
		t.Error("rejected settings changed the player")
	}
}

func TestUpdateConfigReloadFollowsWatcher(t *testing.T) {
	e, space := newTestECS(t)
	_, p := addPlayer(t, e, space, mgl64.Vec3{5, 5, 0})
	path := writeSettings(t, "player:\n  walk_speed: 3\n")

	w, err := cfg.NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	t.Cleanup(func() { w.Close() })

	source := archetypes.ConfigSource.Spawn(e)
	components.ConfigSource.SetValue(source, components.ConfigSourceData{Path: path, Watcher: w})

	if err := os.WriteFile(path, []byte("player:\n  walk_speed: 6\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for p.Config().WalkSpeed != 6 {
		if time.Now().After(deadline) {
			t.Fatalf("walk speed = %v, want 6 after the file changed", p.Config().WalkSpeed)
		}
		UpdateConfigReload(e)
		UpdateLifecycle(e)
		time.Sleep(20 * time.Millisecond)
	}
}

func TestUpdateConfigReloadStopsOnClosedWatcher(t *testing.T) {
	e, _ := newTestECS(t)
	path := writeSettings(t, "")

	w, err := cfg.NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	source := archetypes.ConfigSource.Spawn(e)
	components.ConfigSource.SetValue(source, components.ConfigSourceData{Path: path, Watcher: w})

	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	UpdateConfigReload(e)

	if components.ConfigSource.Get(source).Watcher != nil {
		t.Error("closed watcher should be dropped")
	}
}
