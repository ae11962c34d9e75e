package components

import (
	"github.com/automoto/firstperson/controller"
	"github.com/yohamta/donburi"
)

// SourceID identifies one physical input source.
type SourceID struct {
	Device controller.Device
	Key    controller.Key
}

// BoundAction is one action bound to one source.
type BoundAction struct {
	Group  string
	Action string
	Source SourceID
	Modes  controller.ActivationMode
}

// ActionMapData holds a player's registered actions, their bindings and the
// last value read from every bound source.
type ActionMapData struct {
	Handlers map[string]controller.ActionHandler
	Bindings []BoundAction
	Previous map[SourceID]float64
	// LastDevice is the most recently used device, for HUD prompts.
	LastDevice controller.Device
}

var ActionMap = donburi.NewComponentType[ActionMapData]()

// ActionKey is the handler map key for an action.
func ActionKey(group, name string) string {
	return group + "/" + name
}
