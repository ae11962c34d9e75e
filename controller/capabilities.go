package controller

import (
	"github.com/automoto/firstperson/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

// Transform is a local or world placement.
type Transform struct {
	Translation mgl64.Vec3
	Rotation    mgl64.Quat
}

// IdentityTransform has no translation and no rotation.
func IdentityTransform() Transform {
	return Transform{Rotation: mgl64.QuatIdent()}
}

// PhysicsParams are the configured shape parameters of a character controller.
type PhysicsParams struct {
	Radius  float64
	Height  float64
	Capsule bool
}

// Dimensions describe the live collider of a physical body. HeightCollider is
// the height of the collider centre above the entity origin; SizeCollider
// holds the half extents (radius, radius, half height).
type Dimensions struct {
	HeightCollider float64
	SizeCollider   mgl64.Vec3
}

// Camera is the camera attached to the player entity.
type Camera interface {
	LocalTransform() Transform
	SetLocalTransform(t Transform)
}

// Input registers named actions and binds them to physical sources.
// Registering an action that already exists replaces its handler.
type Input interface {
	RegisterAction(group, name string, handler ActionHandler)
	BindAction(group, name string, device Device, key Key, modes ActivationMode)
}

// CharacterController moves the player's physical body.
type CharacterController interface {
	PhysicsParams() PhysicsParams
	SetPhysicsParams(p PhysicsParams)
	// SetVelocity sets the requested movement velocity.
	SetVelocity(v mgl64.Vec3)
	// AddVelocity adds an instantaneous impulse.
	AddVelocity(v mgl64.Vec3)
	IsOnGround() bool
	SetLocalTransform(t Transform)
	// Physicalize rebuilds the physical body. Hosts raise a
	// PhysicalTypeChanged event as a consequence.
	Physicalize()
}

// PhysicalEntity is the live physical body of an entity.
type PhysicalEntity interface {
	PlayerDimensions() Dimensions
	SetPlayerDimensions(d Dimensions)
}

// Entity is the host entity the player component lives on.
type Entity interface {
	WorldPosition() mgl64.Vec3
	WorldRotation() mgl64.Quat
	SetRotation(q mgl64.Quat)
	// PhysicalEntity returns the body, or false while the entity is not
	// physicalized.
	PhysicalEntity() (PhysicalEntity, bool)
}

// WorldQuery answers geometry overlap questions.
type WorldQuery interface {
	// CapsuleIntersects reports whether c overlaps any static or dynamic
	// geometry other than the skipped bodies.
	CapsuleIntersects(c gamemath.Capsule, skip ...PhysicalEntity) bool
}

// Capabilities bundles the collaborators a Player needs. All are required.
type Capabilities struct {
	Entity    Entity
	Camera    Camera
	Input     Input
	Character CharacterController
	World     WorldQuery
}

func (c Capabilities) validate() error {
	switch {
	case c.Character == nil:
		return ErrMissingCharacterController
	case c.Entity == nil:
		return ErrMissingEntity
	case c.Camera == nil:
		return ErrMissingCamera
	case c.Input == nil:
		return ErrMissingInput
	case c.World == nil:
		return ErrMissingWorldQuery
	}
	return nil
}
