package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ContactTolerance is how far shapes may interpenetrate and still count as
// touching. It absorbs rounding in positions built from sums of offsets.
const ContactTolerance = 1e-9

// Capsule is a segment swept by a sphere. Center is the midpoint of the
// segment, Axis its unit direction, HalfHeight the half length of the segment
// excluding the caps.
type Capsule struct {
	Center     mgl64.Vec3
	Axis       mgl64.Vec3
	Radius     float64
	HalfHeight float64
}

// UprightCapsule builds a Z-aligned capsule.
func UprightCapsule(center mgl64.Vec3, radius, halfHeight float64) Capsule {
	return Capsule{Center: center, Axis: AxisZ, Radius: radius, HalfHeight: halfHeight}
}

// Bottom returns the lowest point of the capsule including its cap.
func (c Capsule) Bottom() float64 {
	return c.Center[2] - c.HalfHeight - c.Radius
}

// Top returns the highest point of the capsule including its cap.
func (c Capsule) Top() float64 {
	return c.Center[2] + c.HalfHeight + c.Radius
}

// Box is an axis aligned box.
type Box struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// NewBox builds a box from a footprint rectangle and a vertical range.
func NewBox(x, y, w, h, bottom, top float64) Box {
	return Box{
		Min: mgl64.Vec3{x, y, bottom},
		Max: mgl64.Vec3{x + w, y + h, top},
	}
}

// CapsuleIntersectsBox reports whether an upright capsule overlaps box.
// Touching surfaces, within ContactTolerance, do not count as overlap, so a
// capsule resting on a floor is free. Only Z-aligned capsules are supported; the axis field is ignored.
func CapsuleIntersectsBox(c Capsule, b Box) bool {
	dx := axisGap(c.Center[0], b.Min[0], b.Max[0])
	dy := axisGap(c.Center[1], b.Min[1], b.Max[1])
	dz := intervalGap(c.Center[2]-c.HalfHeight, c.Center[2]+c.HalfHeight, b.Min[2], b.Max[2])
	return overlaps(dx*dx+dy*dy+dz*dz, c.Radius)
}

// overlaps reports whether a squared distance lies inside radius r by more
// than ContactTolerance.
func overlaps(distSq, r float64) bool {
	inner := r - ContactTolerance
	return inner > 0 && distSq < inner*inner
}

// axisGap returns the distance from v to [lo, hi] along one axis.
func axisGap(v, lo, hi float64) float64 {
	if v < lo {
		return lo - v
	}
	if v > hi {
		return v - hi
	}
	return 0
}

// intervalGap returns the distance between [a0, a1] and [b0, b1], or zero
// when they overlap.
func intervalGap(a0, a1, b0, b1 float64) float64 {
	return math.Max(0, math.Max(b0-a1, a0-b1))
}

// OverlapsDisc reports whether the box footprint overlaps the disc of radius r
// around (x, y). Touching does not count.
func (b Box) OverlapsDisc(x, y, r float64) bool {
	dx := axisGap(x, b.Min[0], b.Max[0])
	dy := axisGap(y, b.Min[1], b.Max[1])
	return overlaps(dx*dx+dy*dy, r)
}
