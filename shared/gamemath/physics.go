package gamemath

import "github.com/go-gl/mathgl/mgl64"

// normalizeEpsilon is the squared length below which a vector is treated as zero.
const normalizeEpsilon = 1e-12

// NormalizeOrZero returns v scaled to unit length, or the zero vector when v
// has no meaningful direction. mgl64's Normalize divides by the length and
// yields NaN components for a zero vector.
func NormalizeOrZero(v mgl64.Vec3) mgl64.Vec3 {
	if v.Dot(v) <= normalizeEpsilon {
		return mgl64.Vec3{}
	}
	return v.Normalize()
}

// LerpVec3 linearly interpolates from a to b. t is not clamped.
func LerpVec3(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// SmoothingFactor converts a fixed approach rate and a frame duration into a
// lerp factor clamped to [0, 1] so long frames cannot overshoot the target.
func SmoothingFactor(rate, frameTime float64) float64 {
	return mgl64.Clamp(rate*frameTime, 0, 1)
}
