package controller

import "github.com/go-gl/mathgl/mgl64"

// PlayerState selects the locomotion speed.
type PlayerState int

const (
	Walking PlayerState = iota
	Sprinting
)

func (s PlayerState) String() string {
	switch s {
	case Walking:
		return "walking"
	case Sprinting:
		return "sprinting"
	}
	return "unknown"
}

// Stance is the posture that sizes the collider and places the camera.
type Stance int

const (
	Standing Stance = iota
	Crouching
)

func (s Stance) String() string {
	switch s {
	case Standing:
		return "standing"
	case Crouching:
		return "crouching"
	}
	return "unknown"
}

// Toggle returns the other stance.
func (s Stance) Toggle() Stance {
	if s == Standing {
		return Crouching
	}
	return Standing
}

// RuntimeState is the per-frame state of a player. It is owned by the Player
// and reset, never reallocated, on reset events.
type RuntimeState struct {
	// MovementDelta is the raw strafe (X) and forward (Y) input of this frame.
	MovementDelta mgl64.Vec2
	// LookDelta is the raw look input: X drives yaw, Y drives pitch.
	LookDelta mgl64.Vec2

	PlayerState   PlayerState
	CurrentStance Stance
	DesiredStance Stance

	CurrentYaw   mgl64.Quat
	CurrentPitch float64

	// CameraTargetOffset is where the camera's local translation is heading.
	CameraTargetOffset mgl64.Vec3
}

// StancePending reports whether a stance change waits for evaluation.
func (s RuntimeState) StancePending() bool {
	return s.CurrentStance != s.DesiredStance
}
