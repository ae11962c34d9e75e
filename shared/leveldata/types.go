// Package leveldata parses TMX levels into world-space data. It has no
// dependencies on ebitengine, donburi or resolv.
//
// A level is authored top-down: one tile is one metre, map X runs along world
// +X and map Y runs against world +Y, so "up" on the map is forward.
package leveldata

import "errors"

var (
	ErrNoSpawn     = errors.New("level has no player spawn")
	ErrBadObstacle = errors.New("invalid obstacle")
	ErrEmptyLevel  = errors.New("level has zero size")
)

// Level holds everything the host needs to build a scene.
type Level struct {
	Name      string
	Width     float64 // metres
	Depth     float64 // metres, along world Y
	Obstacles []Obstacle
	Spawns    []Spawn
}

// Obstacle is an axis-aligned box. Moving obstacles travel vertically from
// Bottom to MoveTo and back, keeping their height.
type Obstacle struct {
	Name        string
	X, Y, W, H  float64 // footprint, metres
	Bottom, Top float64
	MoveTo      float64
	MoveSeconds float64
}

// Moving reports whether the obstacle is animated.
func (o Obstacle) Moving() bool {
	return o.MoveSeconds > 0 && o.MoveTo != o.Bottom
}

// Spawn is a player start. Yaw is in radians about +Z, zero facing +Y.
type Spawn struct {
	X, Y, Z float64
	Yaw     float64
}
