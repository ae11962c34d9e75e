package systems

import (
	"github.com/automoto/firstperson/components"
	"github.com/automoto/firstperson/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObstacles advances moving obstacles along their tween sequences.
func UpdateObstacles(e *ecs.ECS) {
	dt := float32(GetOrCreateClock(e).Delta)

	tags.MovingObstacle.Each(e.World, func(entry *donburi.Entry) {
		mover := components.MovingObstacle.Get(entry)
		if mover.Sequence == nil {
			return
		}
		bottom, _, done := mover.Sequence.Update(dt)
		if done {
			mover.Sequence.Reset()
		}

		obstacle := components.Obstacle.Get(entry)
		obstacle.Bottom = float64(bottom)
		obstacle.Top = obstacle.Bottom + mover.Height
	})
}
