package controller

import (
	"math"
	"testing"
)

func TestRecenterCapsule(t *testing.T) {
	r := mustRig(t, DefaultConfig())
	r.player.ProcessEvent(Event{Kind: EventPhysicalTypeChanged})

	want := recenterEpsilon + 0.9*0.5 + 0.5
	if got := r.character.local.Translation[2]; math.Abs(got-want) > 1e-12 {
		t.Fatalf("collider z = %v, want %v", got, want)
	}
	if r.character.physicalize != 1 {
		t.Fatalf("physicalize calls = %d, want 1", r.character.physicalize)
	}
}

func TestRecenterCylinder(t *testing.T) {
	r := mustRig(t, DefaultConfig())
	r.character.params.Capsule = false
	r.player.ProcessEvent(Event{Kind: EventPhysicalTypeChanged})

	want := recenterEpsilon + 0.9
	if got := r.character.local.Translation[2]; math.Abs(got-want) > 1e-12 {
		t.Fatalf("collider z = %v, want %v", got, want)
	}
}

func TestRecenterSuppressesOwnNotification(t *testing.T) {
	r := mustRig(t, DefaultConfig())
	r.character.onPhysicalize = func() {
		r.player.ProcessEvent(Event{Kind: EventPhysicalTypeChanged})
	}

	r.player.ProcessEvent(Event{Kind: EventPhysicalTypeChanged})
	if r.character.physicalize != 1 {
		t.Fatalf("physicalize calls = %d, want 1", r.character.physicalize)
	}

	// A genuine change from the host afterwards is handled again.
	r.player.ProcessEvent(Event{Kind: EventPhysicalTypeChanged})
	if r.character.physicalize != 2 {
		t.Fatalf("physicalize calls = %d, want 2", r.character.physicalize)
	}
}

func TestRecenterSuppressionSurvivesDeferredNotification(t *testing.T) {
	r := mustRig(t, DefaultConfig())

	r.player.ProcessEvent(Event{Kind: EventPhysicalTypeChanged})
	r.player.ProcessEvent(Event{Kind: EventPhysicalTypeChanged})
	if r.character.physicalize != 1 {
		t.Fatalf("physicalize calls = %d, want the echo swallowed", r.character.physicalize)
	}
}
