package systems

import (
	"github.com/automoto/firstperson/components"
	"github.com/automoto/firstperson/controller"
	"github.com/yohamta/donburi"
)

// ActionMap exposes an entry's ActionMap component as controller.Input.
type ActionMap struct {
	entry *donburi.Entry
}

func NewActionMap(entry *donburi.Entry) *ActionMap {
	return &ActionMap{entry: entry}
}

// RegisterAction installs or replaces the handler for an action.
func (m *ActionMap) RegisterAction(group, name string, handler controller.ActionHandler) {
	data := components.ActionMap.Get(m.entry)
	if data.Handlers == nil {
		data.Handlers = make(map[string]controller.ActionHandler)
	}
	data.Handlers[components.ActionKey(group, name)] = handler
}

// BindAction binds an action to a source. Binding the same action and source
// again replaces the modes rather than adding a second binding.
func (m *ActionMap) BindAction(group, name string, device controller.Device, key controller.Key, modes controller.ActivationMode) {
	data := components.ActionMap.Get(m.entry)
	source := components.SourceID{Device: device, Key: key}
	for i := range data.Bindings {
		b := &data.Bindings[i]
		if b.Group == group && b.Action == name && b.Source == source {
			b.Modes = modes
			return
		}
	}
	data.Bindings = append(data.Bindings, components.BoundAction{
		Group:  group,
		Action: name,
		Source: source,
		Modes:  modes,
	})
}
