package tags

import "github.com/yohamta/donburi"

var (
	Player         = donburi.NewTag().SetName("Player")
	Obstacle       = donburi.NewTag().SetName("Obstacle")
	MovingObstacle = donburi.NewTag().SetName("MovingObstacle")
)

// Resolv tags for broadphase queries
const (
	ResolvSolid     = "solid"
	ResolvCharacter = "character"
	ResolvProbe     = "probe"
)
