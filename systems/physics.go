package systems

import (
	"github.com/automoto/firstperson/components"
	cfg "github.com/automoto/firstperson/config"
	"github.com/automoto/firstperson/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCharacters integrates gravity and the requested velocity of every
// physicalized character, resolving X, then Y, then Z against the world.
// Must run AFTER UpdatePlayers so this frame's requested velocity is used.
func UpdateCharacters(e *ecs.ECS) {
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	query := NewWorldQuery(components.Space.Get(spaceEntry))
	dt := GetOrCreateClock(e).Delta

	components.Character.Each(e.World, func(entry *donburi.Entry) {
		moveCharacter(entry, query, dt)
	})
}

func moveCharacter(entry *donburi.Entry, query *WorldQuery, dt float64) {
	c := components.Character.Get(entry)
	body := c.Body
	if body == nil {
		return
	}
	t := components.Transform.Get(entry)
	pos := t.Position

	radius := body.Dims.SizeCollider[0]
	capsuleAt := func(p mgl64.Vec3) gamemath.Capsule {
		return gamemath.UprightCapsule(p.Add(mgl64.Vec3{0, 0, body.Dims.HeightCollider}), radius, body.Dims.SizeCollider[2])
	}
	blocked := func(from, to mgl64.Vec3) bool {
		// A move out of an overlap is allowed so characters never stick.
		return query.CapsuleIntersects(capsuleAt(to), body) && !query.CapsuleIntersects(capsuleAt(from), body)
	}

	for axis := 0; axis < 2; axis++ {
		step := c.Velocity[axis] * dt
		if step == 0 {
			continue
		}
		next := pos
		next[axis] += step
		if !blocked(pos, next) {
			pos = next
		}
	}

	c.VerticalSpeed -= cfg.Physics.Gravity * dt
	if c.VerticalSpeed < -cfg.Physics.MaxFallSpeed {
		c.VerticalSpeed = -cfg.Physics.MaxFallSpeed
	}
	step := c.VerticalSpeed * dt

	if c.VerticalSpeed > 0 {
		next := pos
		next[2] += step
		if blocked(pos, next) {
			c.VerticalSpeed = 0
		} else {
			pos = next
		}
		c.OnGround = false
	} else {
		ground := query.GroundHeight(pos[0], pos[1], radius, pos[2]+body.GroundOffset(), body)
		if pos[2]+step <= ground {
			pos[2] = ground
			c.VerticalSpeed = 0
			c.OnGround = true
		} else {
			pos[2] += step
			c.OnGround = false
		}
	}

	t.Position = pos
	syncFootprint(c, pos)
}

// syncFootprint moves the character's broadphase object to its position.
func syncFootprint(c *components.CharacterData, pos mgl64.Vec3) {
	if c.Footprint == nil || c.Body == nil {
		return
	}
	scale := cfg.Physics.SpaceScale
	r := c.Body.Dims.SizeCollider[0]
	c.Footprint.X = (pos[0] - r) * scale
	c.Footprint.Y = (pos[1] - r) * scale
	c.Footprint.W = 2 * r * scale
	c.Footprint.H = 2 * r * scale
	c.Footprint.Update()
}
