package systems

import (
	"github.com/automoto/firstperson/components"
	cfg "github.com/automoto/firstperson/config"
	"github.com/automoto/firstperson/controller"
	"github.com/automoto/firstperson/shared/gamemath"
	"github.com/automoto/firstperson/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// WorldQuery answers overlap queries against obstacles and characters. The
// resolv space narrows the candidates; boxes are then tested exactly.
type WorldQuery struct {
	space *resolv.Space
}

func NewWorldQuery(space *resolv.Space) *WorldQuery {
	return &WorldQuery{space: space}
}

type candidate struct {
	box  gamemath.Box
	body *components.BodyData // nil for obstacles
}

// CapsuleIntersects reports whether c overlaps any obstacle or character not
// in skip.
func (q *WorldQuery) CapsuleIntersects(c gamemath.Capsule, skip ...controller.PhysicalEntity) bool {
	for _, cand := range q.candidates(c.Center[0]-c.Radius, c.Center[1]-c.Radius, 2*c.Radius, 2*c.Radius) {
		if cand.body != nil && skipped(cand.body, skip) {
			continue
		}
		if gamemath.CapsuleIntersectsBox(c, cand.box) {
			return true
		}
	}
	return false
}

// GroundHeight returns the highest surface under the disc at (x, y) that is
// no higher than maxZ. The level floor is at zero.
func (q *WorldQuery) GroundHeight(x, y, radius, maxZ float64, skip ...controller.PhysicalEntity) float64 {
	ground := 0.0
	for _, cand := range q.candidates(x-radius, y-radius, 2*radius, 2*radius) {
		if cand.body != nil && skipped(cand.body, skip) {
			continue
		}
		top := cand.box.Max[2]
		if top > maxZ || top <= ground {
			continue
		}
		if cand.box.OverlapsDisc(x, y, radius) {
			ground = top
		}
	}
	return ground
}

// candidates probes the space with a rectangle in metres, following the
// add-check-remove pattern used for cell probes.
func (q *WorldQuery) candidates(x, y, w, h float64) []candidate {
	scale := cfg.Physics.SpaceScale
	probe := resolv.NewObject(x*scale, y*scale, w*scale, h*scale, tags.ResolvProbe)
	q.space.Add(probe)
	check := probe.Check(0, 0, tags.ResolvSolid, tags.ResolvCharacter)
	q.space.Remove(probe)
	if check == nil {
		return nil
	}

	out := make([]candidate, 0, len(check.Objects))
	for _, obj := range check.Objects {
		entry, ok := obj.Data.(*donburi.Entry)
		if !ok || !entry.Valid() {
			continue
		}
		if c, ok := candidateFor(entry, obj, scale); ok {
			out = append(out, c)
		}
	}
	return out
}

func candidateFor(entry *donburi.Entry, obj *resolv.Object, scale float64) (candidate, bool) {
	if entry.HasComponent(components.Obstacle) {
		o := components.Obstacle.Get(entry)
		return candidate{box: gamemath.NewBox(obj.X/scale, obj.Y/scale, obj.W/scale, obj.H/scale, o.Bottom, o.Top)}, true
	}
	if entry.HasComponent(components.Character) {
		c := components.Character.Get(entry)
		if c.Body == nil {
			return candidate{}, false
		}
		return candidate{box: bodyBox(components.Transform.Get(entry).Position, c.Body), body: c.Body}, true
	}
	return candidate{}, false
}

// bodyBox bounds a body's capsule.
func bodyBox(pos mgl64.Vec3, body *components.BodyData) gamemath.Box {
	r := body.Dims.SizeCollider[0]
	center := pos[2] + body.Dims.HeightCollider
	extent := body.Dims.SizeCollider[2] + r
	return gamemath.NewBox(pos[0]-r, pos[1]-r, 2*r, 2*r, center-extent, center+extent)
}

func skipped(body *components.BodyData, skip []controller.PhysicalEntity) bool {
	for _, s := range skip {
		if b, ok := s.(*components.BodyData); ok && b == body {
			return true
		}
	}
	return false
}
