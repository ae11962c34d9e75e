package controller

import (
	"github.com/automoto/firstperson/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

// updateMovement turns the movement input into a world space velocity
// request. Diagonal input is normalised; no input requests zero velocity.
func (p *Player) updateMovement() {
	direction := gamemath.NormalizeOrZero(mgl64.Vec3{p.state.MovementDelta[0], p.state.MovementDelta[1], 0})

	speed := p.cfg.WalkSpeed
	if p.state.PlayerState == Sprinting {
		speed = p.cfg.SprintSpeed
	}

	velocity := p.caps.Entity.WorldRotation().Rotate(direction).Mul(speed)
	p.caps.Character.SetVelocity(velocity)
}
