package controller

import (
	"github.com/go-gl/mathgl/mgl64"
)

// recenterEpsilon lifts the collider a hair above the pivot.
const recenterEpsilon = 0.005

// reCenterCollider offsets the character controller so the entity pivot stays
// at ground level after the body is rebuilt. Re-physicalizing raises another
// PhysicalTypeChanged, which the suppress flag absorbs.
func (p *Player) reCenterCollider() {
	if p.suppressNextRecenter {
		p.suppressNextRecenter = false
		return
	}

	params := p.caps.Character.PhysicsParams()
	heightOffset := params.Height * 0.5
	if params.Capsule {
		heightOffset = heightOffset*0.5 + params.Radius*0.5
	}

	p.caps.Character.SetLocalTransform(Transform{
		Translation: mgl64.Vec3{0, 0, recenterEpsilon + heightOffset},
		Rotation:    mgl64.QuatIdent(),
	})

	p.suppressNextRecenter = true
	p.caps.Character.Physicalize()
}
