package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	// AxisX is the lateral axis; pitch rotates about it.
	AxisX = mgl64.Vec3{1, 0, 0}
	// AxisY points forward.
	AxisY = mgl64.Vec3{0, 1, 0}
	// AxisZ is up; yaw rotates about it.
	AxisZ = mgl64.Vec3{0, 0, 1}
)

// RotationZ returns a rotation of angle radians about the vertical axis.
func RotationZ(angle float64) mgl64.Quat {
	return mgl64.QuatRotate(angle, AxisZ)
}

// RotationX returns a rotation of angle radians about the lateral axis.
func RotationX(angle float64) mgl64.Quat {
	return mgl64.QuatRotate(angle, AxisX)
}

// YawOf extracts the heading of q, in radians about +Z, measured from +Y.
func YawOf(q mgl64.Quat) float64 {
	forward := q.Rotate(AxisY)
	if math.Abs(forward[0]) < 1e-12 && math.Abs(forward[1]) < 1e-12 {
		// Looking straight up or down; fall back to the right vector.
		right := q.Rotate(AxisX)
		return math.Atan2(right[1], right[0])
	}
	return math.Atan2(-forward[0], forward[1])
}

// PitchOf returns the elevation of q's forward axis, in radians, positive
// looking up.
func PitchOf(q mgl64.Quat) float64 {
	forward := q.Rotate(AxisY)
	return math.Atan2(forward[2], math.Hypot(forward[0], forward[1]))
}

// HeadingOnly strips pitch and roll from q.
func HeadingOnly(q mgl64.Quat) mgl64.Quat {
	return RotationZ(YawOf(q))
}
