package components

import (
	"github.com/automoto/firstperson/controller"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CharacterData is the state of a character controller.
type CharacterData struct {
	Params controller.PhysicsParams
	// Velocity is the requested horizontal velocity, m/s.
	Velocity      mgl64.Vec3
	VerticalSpeed float64
	OnGround      bool
	// Local offsets the collider from the entity pivot.
	Local controller.Transform
	// Body is nil until the character has been physicalized.
	Body *BodyData
	// Footprint is the character's broadphase object.
	Footprint *resolv.Object
}

var Character = donburi.NewComponentType[CharacterData]()

// BodyData is the live collider of a physicalized character. Its address is
// its identity in world queries.
type BodyData struct {
	Dims controller.Dimensions
}

func (b *BodyData) PlayerDimensions() controller.Dimensions {
	return b.Dims
}

func (b *BodyData) SetPlayerDimensions(d controller.Dimensions) {
	b.Dims = d
}

// GroundOffset is the gap between the pivot and the bottom of the collider.
func (b *BodyData) GroundOffset() float64 {
	return b.Dims.HeightCollider - b.Dims.SizeCollider[2] - b.Dims.SizeCollider[0]
}
