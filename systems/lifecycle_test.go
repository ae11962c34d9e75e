package systems

import (
	"testing"

	"github.com/automoto/firstperson/components"
	cfg "github.com/automoto/firstperson/config"
	"github.com/automoto/firstperson/controller"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

func TestSpawnAnnouncementRecentersCollider(t *testing.T) {
	e, space := newTestECS(t)
	entry, _ := addPlayer(t, e, space, mgl64.Vec3{5, 5, 0})

	UpdateLifecycle(e)
	UpdateLifecycle(e)

	// Capsule: radius 1 and height 1.8 give 0.45 + 0.5 above a 0.005 lift.
	local := components.Character.Get(entry).Local
	if !approx(local.Translation[2], 0.955) {
		t.Errorf("collider offset = %v, want 0.955", local.Translation[2])
	}
}

func TestResetRequestedResetsPlayers(t *testing.T) {
	e, space := newTestECS(t)
	poller := newFakePoller()
	usePoller(t, poller)
	_, p := addPlayer(t, e, space, mgl64.Vec3{5, 5, 0})

	poller.keys[ebiten.KeyC] = true
	step(e, 1)
	if p.State().CurrentStance != controller.Crouching {
		t.Fatal("crouch key should crouch")
	}

	components.ResetRequestedEvent.Publish(e.World, components.ResetRequested{})
	UpdateLifecycle(e)
	if p.State().CurrentStance != controller.Standing {
		t.Errorf("stance after reset = %v, want standing", p.State().CurrentStance)
	}
}

func TestPropertyChangedAppliesConfig(t *testing.T) {
	e, space := newTestECS(t)
	_, p := addPlayer(t, e, space, mgl64.Vec3{5, 5, 0})

	c := cfg.Player
	c.WalkSpeed = 7
	components.PropertyChangedEvent.Publish(e.World, components.PropertyChanged{Config: c})
	UpdateLifecycle(e)

	if p.Config().WalkSpeed != 7 {
		t.Errorf("walk speed = %v, want 7", p.Config().WalkSpeed)
	}
}

func TestPropertyChangedRejectsInvalidConfig(t *testing.T) {
	e, space := newTestECS(t)
	_, p := addPlayer(t, e, space, mgl64.Vec3{5, 5, 0})

	c := cfg.Player
	c.WalkSpeed = -1
	components.PropertyChangedEvent.Publish(e.World, components.PropertyChanged{Config: c})
	UpdateLifecycle(e)

	if p.Config().WalkSpeed != controller.DefaultWalkSpeed {
		t.Errorf("walk speed = %v, want unchanged", p.Config().WalkSpeed)
	}
}

func TestGameplayStartedTakesSpawnHeading(t *testing.T) {
	e, space := newTestECS(t)
	entry, p := addPlayer(t, e, space, mgl64.Vec3{5, 5, 0})

	components.Transform.Get(entry).Rotation = mgl64.QuatRotate(0.7, mgl64.Vec3{0, 0, 1})
	components.GameplayStartedEvent.Publish(e.World, components.GameplayStarted{})
	UpdateLifecycle(e)

	want := mgl64.QuatRotate(0.7, mgl64.Vec3{0, 0, 1})
	if !quatNear(p.State().CurrentYaw, want, 1e-9) {
		t.Errorf("yaw = %v, want %v", p.State().CurrentYaw, want)
	}
}
