package systems

import (
	"github.com/automoto/firstperson/archetypes"
	"github.com/automoto/firstperson/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances the frame clock by one fixed tick.
// Must run first in the system order.
func UpdateClock(e *ecs.ECS) {
	clock := GetOrCreateClock(e)
	clock.Delta = 1 / float64(ebiten.TPS())
	clock.Frame++
}

// GetOrCreateClock returns the singleton Clock component, creating if needed
func GetOrCreateClock(e *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		entry = archetypes.Clock.Spawn(e)
	}
	return components.Clock.Get(entry)
}
