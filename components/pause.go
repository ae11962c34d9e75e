package components

import "github.com/yohamta/donburi"

// PauseData stores whether gameplay systems are suspended.
type PauseData struct {
	IsPaused bool
	// Pressed is last frame's state of the pause key.
	Pressed bool
}

var Pause = donburi.NewComponentType[PauseData]()
