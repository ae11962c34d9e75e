package factory

import (
	"github.com/automoto/firstperson/archetypes"
	"github.com/automoto/firstperson/components"
	cfg "github.com/automoto/firstperson/config"
	"github.com/automoto/firstperson/shared/leveldata"
	"github.com/automoto/firstperson/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateObstacle adds a static obstacle to the world and the space.
func CreateObstacle(ecs *ecs.ECS, space *resolv.Space, o leveldata.Obstacle) *donburi.Entry {
	obstacle := archetypes.Obstacle.Spawn(ecs)
	attachObstacle(obstacle, space, o)
	return obstacle
}

// CreateMovingObstacle adds an obstacle whose bottom travels to MoveTo and
// back, taking MoveSeconds each way.
func CreateMovingObstacle(ecs *ecs.ECS, space *resolv.Space, o leveldata.Obstacle) *donburi.Entry {
	obstacle := archetypes.MovingObstacle.Spawn(ecs)
	attachObstacle(obstacle, space, o)

	// The obstacle moves using a *gween.Sequence of tweens, moving it back and forth.
	tw := gween.NewSequence()
	tw.Add(
		gween.New(float32(o.Bottom), float32(o.MoveTo), float32(o.MoveSeconds), ease.Linear),
		gween.New(float32(o.MoveTo), float32(o.Bottom), float32(o.MoveSeconds), ease.Linear),
	)
	components.MovingObstacle.SetValue(obstacle, components.MovingObstacleData{
		Sequence: tw,
		Height:   o.Top - o.Bottom,
	})

	return obstacle
}

func attachObstacle(entry *donburi.Entry, space *resolv.Space, o leveldata.Obstacle) {
	scale := cfg.Physics.SpaceScale
	obj := resolv.NewObject(o.X*scale, o.Y*scale, o.W*scale, o.H*scale, tags.ResolvSolid)
	obj.Data = entry
	space.Add(obj)

	components.Obstacle.SetValue(entry, components.ObstacleData{
		Object: obj,
		Name:   o.Name,
		Bottom: o.Bottom,
		Top:    o.Top,
	})
}
