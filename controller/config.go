package controller

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	DefaultWalkSpeed              = 3.0
	DefaultSprintSpeed            = 5.0
	DefaultJumpHeight             = 3.0
	DefaultRotationSpeed          = 0.002
	DefaultCameraHeightStanding   = 1.8
	DefaultCameraHeightCrouching  = 1.2
	DefaultCapsuleHeightStanding  = 1.0
	DefaultCapsuleHeightCrouching = 0.5
	DefaultCapsuleGroundOffset    = 0.2
	DefaultPitchMax               = 1.5
	DefaultPitchMin               = -0.85
)

// Config holds the tunable parameters of a player. Edits made through
// Player.SetConfig only take effect on the next reset event.
type Config struct {
	WalkSpeed   float64 // Player walking speed
	SprintSpeed float64 // Player sprinting speed
	// JumpHeight is applied as an upward velocity impulse, not a height target.
	JumpHeight    float64
	RotationSpeed float64 // Look sensitivity, radians per input unit

	CameraOffsetStanding  mgl64.Vec3
	CameraOffsetCrouching mgl64.Vec3

	CapsuleHeightStanding  float64
	CapsuleHeightCrouching float64
	CapsuleGroundOffset    float64

	PitchMax float64
	PitchMin float64
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		WalkSpeed:              DefaultWalkSpeed,
		SprintSpeed:            DefaultSprintSpeed,
		JumpHeight:             DefaultJumpHeight,
		RotationSpeed:          DefaultRotationSpeed,
		CameraOffsetStanding:   mgl64.Vec3{0, 0, DefaultCameraHeightStanding},
		CameraOffsetCrouching:  mgl64.Vec3{0, 0, DefaultCameraHeightCrouching},
		CapsuleHeightStanding:  DefaultCapsuleHeightStanding,
		CapsuleHeightCrouching: DefaultCapsuleHeightCrouching,
		CapsuleGroundOffset:    DefaultCapsuleGroundOffset,
		PitchMax:               DefaultPitchMax,
		PitchMin:               DefaultPitchMin,
	}
}

// Validate reports the first parameter that would break the controller.
func (c Config) Validate() error {
	switch {
	case c.WalkSpeed < 0:
		return fmt.Errorf("%w: walk speed %v is negative", ErrInvalidConfig, c.WalkSpeed)
	case c.SprintSpeed < 0:
		return fmt.Errorf("%w: sprint speed %v is negative", ErrInvalidConfig, c.SprintSpeed)
	case c.JumpHeight < 0:
		return fmt.Errorf("%w: jump height %v is negative", ErrInvalidConfig, c.JumpHeight)
	case c.CapsuleHeightStanding <= 0:
		return fmt.Errorf("%w: standing capsule height must be positive", ErrInvalidConfig)
	case c.CapsuleHeightCrouching <= 0:
		return fmt.Errorf("%w: crouching capsule height must be positive", ErrInvalidConfig)
	case c.CapsuleGroundOffset < 0:
		return fmt.Errorf("%w: capsule ground offset %v is negative", ErrInvalidConfig, c.CapsuleGroundOffset)
	case c.PitchMin > c.PitchMax:
		return fmt.Errorf("%w: pitch limits [%v, %v] are inverted", ErrInvalidConfig, c.PitchMin, c.PitchMax)
	}
	return nil
}

// stanceTargets returns the collider height and camera offset for s.
func (c Config) stanceTargets(s Stance) (float64, mgl64.Vec3) {
	if s == Crouching {
		return c.CapsuleHeightCrouching, c.CameraOffsetCrouching
	}
	return c.CapsuleHeightStanding, c.CameraOffsetStanding
}
