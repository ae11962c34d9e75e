package systems

import (
	"github.com/automoto/firstperson/components"
	"github.com/automoto/firstperson/controller"
	"github.com/automoto/firstperson/logger"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SubscribeLifecycle routes host lifecycle events to player controllers.
// Call once per world before the first update.
func SubscribeLifecycle(w donburi.World) {
	components.GameplayStartedEvent.Subscribe(w, onGameplayStarted)
	components.ResetRequestedEvent.Subscribe(w, onResetRequested)
	components.PropertyChangedEvent.Subscribe(w, onPropertyChanged)
	components.PhysicalTypeChangedEvent.Subscribe(w, onPhysicalTypeChanged)
}

// UpdateLifecycle delivers the events queued since the last frame.
// Must run BEFORE UpdatePlayers.
func UpdateLifecycle(e *ecs.ECS) {
	components.GameplayStartedEvent.ProcessEvents(e.World)
	components.ResetRequestedEvent.ProcessEvents(e.World)
	components.PropertyChangedEvent.ProcessEvents(e.World)
	components.PhysicalTypeChangedEvent.ProcessEvents(e.World)
}

func onGameplayStarted(w donburi.World, _ components.GameplayStarted) {
	eachController(w, func(_ *donburi.Entry, p *controller.Player) {
		p.ProcessEvent(controller.Event{Kind: controller.EventGameplayStarted})
	})
	logger.L().Info("Gameplay started")
}

func onResetRequested(w donburi.World, _ components.ResetRequested) {
	eachController(w, func(_ *donburi.Entry, p *controller.Player) {
		p.ProcessEvent(controller.Event{Kind: controller.EventReset})
	})
	logger.L().Info("Players reset")
}

func onPropertyChanged(w donburi.World, ev components.PropertyChanged) {
	eachController(w, func(entry *donburi.Entry, p *controller.Player) {
		if err := p.SetConfig(ev.Config); err != nil {
			logger.L().Warn("Rejected player config", "entity", entry.Entity(), "error", err)
			return
		}
		p.ProcessEvent(controller.Event{Kind: controller.EventEditorPropertyChanged})
	})
}

func onPhysicalTypeChanged(_ donburi.World, ev components.PhysicalTypeChanged) {
	entry := ev.Entity
	if entry == nil || !entry.Valid() || !entry.HasComponent(components.Player) {
		return
	}
	if p := components.Player.Get(entry).Controller; p != nil {
		p.ProcessEvent(controller.Event{Kind: controller.EventPhysicalTypeChanged})
	}
}

func eachController(w donburi.World, fn func(*donburi.Entry, *controller.Player)) {
	components.Player.Each(w, func(entry *donburi.Entry) {
		if p := components.Player.Get(entry).Controller; p != nil {
			fn(entry, p)
		}
	})
}
