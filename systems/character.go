package systems

import (
	"github.com/automoto/firstperson/components"
	cfg "github.com/automoto/firstperson/config"
	"github.com/automoto/firstperson/controller"
	"github.com/automoto/firstperson/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// CharacterAdapter exposes a player entry as the controller's entity and
// character controller.
type CharacterAdapter struct {
	entry *donburi.Entry
}

func NewCharacterAdapter(entry *donburi.Entry) *CharacterAdapter {
	return &CharacterAdapter{entry: entry}
}

func (a *CharacterAdapter) character() *components.CharacterData {
	return components.Character.Get(a.entry)
}

func (a *CharacterAdapter) transform() *components.TransformData {
	return components.Transform.Get(a.entry)
}

func (a *CharacterAdapter) PhysicsParams() controller.PhysicsParams {
	return a.character().Params
}

func (a *CharacterAdapter) SetPhysicsParams(p controller.PhysicsParams) {
	a.character().Params = p
}

// SetVelocity sets the requested horizontal velocity. Vertical motion is
// owned by gravity and impulses.
func (a *CharacterAdapter) SetVelocity(v mgl64.Vec3) {
	a.character().Velocity = mgl64.Vec3{v[0], v[1], 0}
}

// AddVelocity applies an impulse; its Z part feeds the vertical speed.
func (a *CharacterAdapter) AddVelocity(v mgl64.Vec3) {
	c := a.character()
	c.Velocity = c.Velocity.Add(mgl64.Vec3{v[0], v[1], 0})
	c.VerticalSpeed += v[2]
	if v[2] > 0 {
		c.OnGround = false
	}
}

func (a *CharacterAdapter) IsOnGround() bool {
	return a.character().OnGround
}

func (a *CharacterAdapter) SetLocalTransform(t controller.Transform) {
	a.character().Local = t
}

// Physicalize rebuilds the body from the current params and announces it.
// An existing body keeps its dimensions and identity.
func (a *CharacterAdapter) Physicalize() {
	c := a.character()
	if c.Body == nil {
		c.Body = &components.BodyData{Dims: defaultDimensions(c.Params)}
	}
	components.PhysicalTypeChangedEvent.Publish(a.entry.World, components.PhysicalTypeChanged{Entity: a.entry})
}

func defaultDimensions(p controller.PhysicsParams) controller.Dimensions {
	radius := p.Radius * 0.5
	half := p.Height * 0.5
	return controller.Dimensions{
		HeightCollider: radius + half,
		SizeCollider:   mgl64.Vec3{radius, radius, half},
	}
}

func (a *CharacterAdapter) WorldPosition() mgl64.Vec3 {
	return a.transform().Position
}

func (a *CharacterAdapter) WorldRotation() mgl64.Quat {
	return a.transform().Rotation
}

func (a *CharacterAdapter) SetRotation(q mgl64.Quat) {
	a.transform().Rotation = q
}

func (a *CharacterAdapter) PhysicalEntity() (controller.PhysicalEntity, bool) {
	body := a.character().Body
	if body == nil {
		return nil, false
	}
	return body, true
}

// CameraAdapter exposes an entry's Camera component as controller.Camera.
type CameraAdapter struct {
	entry *donburi.Entry
}

func NewCameraAdapter(entry *donburi.Entry) *CameraAdapter {
	return &CameraAdapter{entry: entry}
}

func (a *CameraAdapter) LocalTransform() controller.Transform {
	return components.Camera.Get(a.entry).Local
}

func (a *CameraAdapter) SetLocalTransform(t controller.Transform) {
	components.Camera.Get(a.entry).Local = t
}

// CharacterParams is the configured character controller shape.
func CharacterParams() controller.PhysicsParams {
	return controller.PhysicsParams{
		Radius:  cfg.Character.Radius,
		Height:  cfg.Character.Height,
		Capsule: cfg.Character.Capsule,
	}
}

// ColliderCenter is the world height of the collider centre as placed by the
// character's local transform.
func ColliderCenter(entry *donburi.Entry) float64 {
	return components.Transform.Get(entry).Position[2] + components.Character.Get(entry).Local.Translation[2]
}

// EyeHeight is the world height of the player's camera.
func EyeHeight(entry *donburi.Entry) float64 {
	return components.Transform.Get(entry).Position[2] + components.Camera.Get(entry).Local.Translation[2]
}

// CameraPitch is the pitch the camera is rendered at.
func CameraPitch(entry *donburi.Entry) float64 {
	return gamemath.PitchOf(components.Camera.Get(entry).Local.Rotation)
}
