package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// MovingObstacleData drives an obstacle's bottom with a looping tween
// sequence. The obstacle keeps its height while moving.
type MovingObstacleData struct {
	Sequence *gween.Sequence
	Height   float64
}

var MovingObstacle = donburi.NewComponentType[MovingObstacleData]()
