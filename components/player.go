package components

import (
	"github.com/automoto/firstperson/controller"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Controller *controller.Player
	// Blocked is set while a stand-up request is refused by geometry.
	Blocked bool
	// LastStanceChange is the frame of the most recent stance change.
	LastStanceChange uint64
}

var Player = donburi.NewComponentType[PlayerData]()
