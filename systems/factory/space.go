package factory

import (
	"math"

	"github.com/automoto/firstperson/archetypes"
	"github.com/automoto/firstperson/components"
	cfg "github.com/automoto/firstperson/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace creates the broadphase space covering a width x depth metre
// floor. Metres are scaled into space units so sub-metre footprints still
// land on whole cells.
func CreateSpace(ecs *ecs.ECS, width, depth float64) *donburi.Entry {
	scale := cfg.Physics.SpaceScale
	cell := cfg.Physics.CellSize

	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(
		int(math.Ceil(width*scale)),
		int(math.Ceil(depth*scale)),
		cell, cell,
	)
	components.Space.Set(space, spaceData)
	return space
}
