package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObstacleData is a solid box in the world. The resolv object holds the
// footprint; Bottom and Top bound it vertically in metres.
type ObstacleData struct {
	*resolv.Object
	Name        string
	Bottom, Top float64
}

var Obstacle = donburi.NewComponentType[ObstacleData]()
