package controller

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func crouched(t *testing.T) *rig {
	t.Helper()
	r := mustRig(t, DefaultConfig())
	r.input.fire(ActionCrouch, ActivationPress, 1)
	r.update(1.0 / 60)
	if r.player.State().CurrentStance != Crouching {
		t.Fatalf("setup: stance = %v, want crouching", r.player.State().CurrentStance)
	}
	return r
}

func TestCrouchResizesCollider(t *testing.T) {
	r := crouched(t)

	want := mgl64.Vec3{0.5, 0.5, 0.25}
	if !vecNear(r.body.dims.SizeCollider, want, 1e-12) {
		t.Fatalf("size collider = %v, want %v", r.body.dims.SizeCollider, want)
	}
	if got := r.body.dims.HeightCollider; math.Abs(got-0.95) > 1e-12 {
		t.Fatalf("height collider = %v, want 0.95", got)
	}
	if got := r.player.State().CameraTargetOffset; got != DefaultConfig().CameraOffsetCrouching {
		t.Fatalf("camera target = %v, want crouching offset", got)
	}
	if len(r.world.queries) != 0 {
		t.Fatalf("crouching queried the world %d times", len(r.world.queries))
	}
	if len(r.observer.changes) != 1 || r.observer.changes[0] != [2]Stance{Standing, Crouching} {
		t.Fatalf("observer changes = %v", r.observer.changes)
	}
}

func TestCrouchSucceedsEvenWhenWorldIsBlocked(t *testing.T) {
	r := mustRig(t, DefaultConfig())
	r.world.blocked = true
	r.input.fire(ActionCrouch, ActivationPress, 1)
	r.update(1.0 / 60)

	if r.player.State().CurrentStance != Crouching {
		t.Fatalf("stance = %v, want crouching", r.player.State().CurrentStance)
	}
}

func TestCrouchIgnoresHoldAndRelease(t *testing.T) {
	r := mustRig(t, DefaultConfig())
	r.input.fire(ActionCrouch, ActivationHold, 1)
	r.input.fire(ActionCrouch, ActivationRelease, 0)

	if r.player.State().DesiredStance != Standing {
		t.Fatalf("desired stance = %v, want standing", r.player.State().DesiredStance)
	}
}

func TestNoStanceWorkWithoutRequest(t *testing.T) {
	r := mustRig(t, DefaultConfig())
	dimsWrites := r.body.sets
	target := r.player.State().CameraTargetOffset

	for i := 0; i < 10; i++ {
		r.update(1.0 / 60)
	}

	if r.body.sets != dimsWrites {
		t.Fatalf("collider written %d times without a stance request", r.body.sets-dimsWrites)
	}
	if r.player.State().CameraTargetOffset != target {
		t.Fatalf("camera target moved to %v", r.player.State().CameraTargetOffset)
	}
	if len(r.world.queries) != 0 || len(r.observer.changes) != 0 {
		t.Fatalf("unexpected stance activity: %d queries, %d changes", len(r.world.queries), len(r.observer.changes))
	}
}

func TestDoubleToggleInOneFrameIsNoop(t *testing.T) {
	r := mustRig(t, DefaultConfig())
	r.input.fire(ActionCrouch, ActivationPress, 1)
	r.input.fire(ActionCrouch, ActivationPress, 1)
	r.update(1.0 / 60)

	if len(r.observer.changes) != 0 {
		t.Fatalf("observer changes = %v, want none", r.observer.changes)
	}
}

func TestStandUpBlockedThenRetried(t *testing.T) {
	r := crouched(t)
	r.entity.pos = mgl64.Vec3{1, 2, 3}
	r.world.blocked = true

	r.input.fire(ActionCrouch, ActivationPress, 1)
	for i := 0; i < 3; i++ {
		r.update(1.0 / 60)
	}

	s := r.player.State()
	if s.CurrentStance != Crouching || s.DesiredStance != Standing {
		t.Fatalf("stance = %v/%v, want crouching/standing", s.CurrentStance, s.DesiredStance)
	}
	if !r.player.StanceBlocked() {
		t.Fatal("StanceBlocked = false, want true")
	}
	if len(r.world.queries) != 3 {
		t.Fatalf("queries = %d, want one per frame", len(r.world.queries))
	}
	if len(r.observer.blocked) != 1 {
		t.Fatalf("blocked notifications = %d, want 1", len(r.observer.blocked))
	}
	if got := r.body.dims.SizeCollider[2]; got != 0.25 {
		t.Fatalf("collider half height = %v, want crouched 0.25", got)
	}

	q := r.world.queries[0]
	if !vecNear(q.Center, mgl64.Vec3{1, 2, 4.2}, 1e-12) {
		t.Fatalf("query center = %v, want (1, 2, 4.2)", q.Center)
	}
	if q.Radius != 0.5 || q.HalfHeight != 0.5 {
		t.Fatalf("query radius/half height = %v/%v, want 0.5/0.5", q.Radius, q.HalfHeight)
	}
	if skip := r.world.skipped[0]; len(skip) != 1 || skip[0] != PhysicalEntity(r.body) {
		t.Fatalf("skip list = %v, want the player's own body", skip)
	}

	r.world.blocked = false
	r.update(1.0 / 60)

	if r.player.State().CurrentStance != Standing {
		t.Fatalf("stance after clearing = %v, want standing", r.player.State().CurrentStance)
	}
	if r.player.StanceBlocked() {
		t.Fatal("StanceBlocked still set after standing up")
	}
	if got := r.body.dims.HeightCollider; math.Abs(got-1.2) > 1e-12 {
		t.Fatalf("height collider = %v, want 1.2", got)
	}
	if got := r.player.State().CameraTargetOffset; got != DefaultConfig().CameraOffsetStanding {
		t.Fatalf("camera target = %v, want standing offset", got)
	}
}

func TestBlockedNotificationPerRequest(t *testing.T) {
	r := crouched(t)
	r.world.blocked = true
	r.input.fire(ActionCrouch, ActivationPress, 1)
	r.update(1.0 / 60)
	r.update(1.0 / 60)

	if len(r.observer.blocked) != 1 {
		t.Fatalf("blocked notifications = %d, want 1 across retries", len(r.observer.blocked))
	}

	// Cancelling the request clears the flag.
	r.input.fire(ActionCrouch, ActivationPress, 1)
	r.update(1.0 / 60)
	if r.player.State().StancePending() {
		t.Fatal("stance still pending after cancelling")
	}
	if r.player.StanceBlocked() {
		t.Fatal("StanceBlocked still set after cancelling")
	}

	r.input.fire(ActionCrouch, ActivationPress, 1)
	r.update(1.0 / 60)
	if len(r.observer.blocked) != 2 {
		t.Fatalf("blocked notifications = %d, want 2 after a fresh request", len(r.observer.blocked))
	}

	r.world.blocked = false
	r.update(1.0 / 60)
	r.input.fire(ActionCrouch, ActivationPress, 1)
	r.update(1.0 / 60)
	r.world.blocked = true
	r.input.fire(ActionCrouch, ActivationPress, 1)
	r.update(1.0 / 60)

	if len(r.observer.blocked) != 3 {
		t.Fatalf("blocked notifications = %d, want 3 after standing and crouching again", len(r.observer.blocked))
	}
}

func TestStanceDeferredWithoutBody(t *testing.T) {
	r := mustRig(t, DefaultConfig())
	body := r.entity.body
	r.entity.body = nil

	r.input.fire(ActionCrouch, ActivationPress, 1)
	r.update(1.0 / 60)
	if r.player.State().CurrentStance != Standing {
		t.Fatalf("stance = %v, want deferred", r.player.State().CurrentStance)
	}

	r.entity.body = body
	r.update(1.0 / 60)
	if r.player.State().CurrentStance != Crouching {
		t.Fatalf("stance = %v, want crouching once the body exists", r.player.State().CurrentStance)
	}
}
