package controller

import (
	"github.com/automoto/firstperson/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

// cameraApproachRate is how fast the camera offset chases its target, per
// second, before clamping to a full step.
const cameraApproachRate = 10.0

// updateRotation accumulates yaw and applies it to the body. Yaw is not
// clamped.
func (p *Player) updateRotation() {
	step := gamemath.RotationZ(p.state.LookDelta[0] * p.cfg.RotationSpeed)
	p.state.CurrentYaw = p.state.CurrentYaw.Mul(step).Normalize()
	p.caps.Entity.SetRotation(p.state.CurrentYaw)
}

// updateCamera accumulates pitch within limits and moves the camera offset
// toward the stance target. Pitch only rotates the camera.
func (p *Player) updateCamera(frameTime float64) {
	p.state.CurrentPitch = mgl64.Clamp(
		p.state.CurrentPitch+p.state.LookDelta[1]*p.cfg.RotationSpeed,
		p.cfg.PitchMin,
		p.cfg.PitchMax,
	)

	current := p.caps.Camera.LocalTransform().Translation
	offset := gamemath.LerpVec3(current, p.state.CameraTargetOffset, gamemath.SmoothingFactor(cameraApproachRate, frameTime))

	p.caps.Camera.SetLocalTransform(Transform{
		Translation: offset,
		Rotation:    gamemath.RotationX(p.state.CurrentPitch),
	})
}
