package controller

// EventKind identifies a host lifecycle event.
type EventKind int

const (
	EventGameplayStarted EventKind = iota
	EventUpdate
	EventReset
	EventEditorPropertyChanged
	EventPhysicalTypeChanged
)

func (k EventKind) String() string {
	switch k {
	case EventGameplayStarted:
		return "gameplay_started"
	case EventUpdate:
		return "update"
	case EventReset:
		return "reset"
	case EventEditorPropertyChanged:
		return "editor_property_changed"
	case EventPhysicalTypeChanged:
		return "physical_type_changed"
	}
	return "unknown"
}

// Event is a lifecycle notification delivered by the host.
type Event struct {
	Kind EventKind
	// FrameTime is the frame duration in seconds; only set for EventUpdate.
	FrameTime float64
}

// UpdateEvent builds a per-frame update event.
func UpdateEvent(frameTime float64) Event {
	return Event{Kind: EventUpdate, FrameTime: frameTime}
}
