package components

import (
	"github.com/automoto/firstperson/controller"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// GameplayStarted is published once a scene has spawned its players.
type GameplayStarted struct{}

// ResetRequested asks every player to return to its initial state.
type ResetRequested struct{}

// PropertyChanged carries an edited controller config.
type PropertyChanged struct {
	Config controller.Config
}

// PhysicalTypeChanged is published when an entity's body is rebuilt.
type PhysicalTypeChanged struct {
	Entity *donburi.Entry
}

var (
	GameplayStartedEvent     = events.NewEventType[GameplayStarted]()
	ResetRequestedEvent      = events.NewEventType[ResetRequested]()
	PropertyChangedEvent     = events.NewEventType[PropertyChanged]()
	PhysicalTypeChangedEvent = events.NewEventType[PhysicalTypeChanged]()
)
