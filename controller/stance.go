package controller

import (
	"github.com/automoto/firstperson/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

// StanceObserver is told about stance changes the controller commits or
// refuses. StanceBlocked fires once per refused request, not every retry.
type StanceObserver interface {
	StanceChanged(from, to Stance)
	StanceBlocked(desired Stance)
}

// tryUpdateStance evaluates a pending stance change. Standing up requires
// room for the standing capsule; crouching always fits. A refused or
// deferred request stays pending and is retried next frame.
func (p *Player) tryUpdateStance() {
	if !p.state.StancePending() {
		// A cancelled request is no longer refused.
		p.stanceBlocked = false
		return
	}

	body, ok := p.caps.Entity.PhysicalEntity()
	if !ok {
		return
	}

	radius := p.caps.Character.PhysicsParams().Radius * 0.5
	desired := p.state.DesiredStance
	height, cameraOffset := p.cfg.stanceTargets(desired)

	if desired == Standing {
		capsule := p.standingCapsule(radius)
		if p.caps.World.CapsuleIntersects(capsule, body) {
			p.blockStance(desired)
			return
		}
	}

	from := p.state.CurrentStance
	dims := p.stanceDimensions(body.PlayerDimensions(), radius, height)
	p.state.CameraTargetOffset = cameraOffset
	p.state.CurrentStance = desired
	p.stanceBlocked = false
	body.SetPlayerDimensions(dims)

	p.log.Debug("Stance changed", "from", from, "to", desired)
	if p.observer != nil {
		p.observer.StanceChanged(from, desired)
	}
}

// standingCapsule is the volume the player would occupy standing up at its
// current position.
func (p *Player) standingCapsule(radius float64) gamemath.Capsule {
	halfHeight := p.cfg.CapsuleHeightStanding * 0.5
	center := p.caps.Entity.WorldPosition().Add(mgl64.Vec3{0, 0, p.cfg.CapsuleGroundOffset + radius + halfHeight})
	return gamemath.UprightCapsule(center, radius, halfHeight)
}

// stanceDimensions sizes the collider for a stance of the given height.
func (p *Player) stanceDimensions(dims Dimensions, radius, height float64) Dimensions {
	dims.HeightCollider = p.cfg.CapsuleGroundOffset + radius + height*0.5
	dims.SizeCollider = mgl64.Vec3{radius, radius, height * 0.5}
	return dims
}

func (p *Player) blockStance(desired Stance) {
	if p.stanceBlocked {
		return
	}
	p.stanceBlocked = true
	p.log.Debug("Stance change blocked by geometry", "desired", desired)
	if p.observer != nil {
		p.observer.StanceBlocked(desired)
	}
}
