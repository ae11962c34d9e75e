package systems

import (
	"math"
	"strings"

	"github.com/automoto/firstperson/components"
	cfg "github.com/automoto/firstperson/config"
	"github.com/automoto/firstperson/controller"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// InputPoller reads raw device state once per frame.
type InputPoller interface {
	Poll()
	KeyPressed(key ebiten.Key) bool
	CursorDelta() (dx, dy float64)
	Gamepads() []ebiten.GamepadID
	GamepadName(id ebiten.GamepadID) string
	GamepadButtonPressed(id ebiten.GamepadID, button ebiten.StandardGamepadButton) bool
	GamepadAxis(id ebiten.GamepadID, axis ebiten.StandardGamepadAxis) float64
}

// Poller is the input source used by the input and settings systems.
var Poller InputPoller = &ebitenPoller{}

// UpdateInput polls devices and dispatches bound actions to every action map.
// Must run BEFORE UpdatePlayers in the system order.
func UpdateInput(e *ecs.ECS) {
	Poller.Poll()

	components.ActionMap.Each(e.World, func(entry *donburi.Entry) {
		dispatchActions(components.ActionMap.Get(entry), func(id components.SourceID) (float64, bool) {
			return readSource(Poller, id)
		})
	})
}

// dispatchActions turns source readings into activations. Digital sources
// produce press on the down edge, hold while down and release on the up edge.
// Analog sources produce hold with the reading while non-zero and a single
// release when they return to zero.
func dispatchActions(am *components.ActionMapData, read func(components.SourceID) (float64, bool)) {
	type reading struct {
		value  float64
		analog bool
	}
	current := make(map[components.SourceID]reading, len(am.Bindings))

	for _, b := range am.Bindings {
		r, ok := current[b.Source]
		if !ok {
			r.value, r.analog = read(b.Source)
			current[b.Source] = r
		}
		if r.value != 0 {
			am.LastDevice = b.Source.Device
		}

		handler, ok := am.Handlers[components.ActionKey(b.Group, b.Action)]
		if !ok {
			continue
		}
		mode, value, fire := transition(am.Previous[b.Source], r.value, r.analog)
		if fire && b.Modes.Has(mode) {
			handler(mode, value)
		}
	}

	if am.Previous == nil {
		am.Previous = make(map[components.SourceID]float64, len(current))
	}
	for id, r := range current {
		am.Previous[id] = r.value
	}
}

func transition(prev, cur float64, analog bool) (controller.ActivationMode, float64, bool) {
	if analog {
		switch {
		case cur != 0:
			return controller.ActivationHold, cur, true
		case prev != 0:
			return controller.ActivationRelease, 0, true
		}
		return 0, 0, false
	}

	switch {
	case cur != 0 && prev == 0:
		return controller.ActivationPress, 1, true
	case cur != 0:
		return controller.ActivationHold, 1, true
	case prev != 0:
		return controller.ActivationRelease, 0, true
	}
	return 0, 0, false
}

// readSource returns the current value of a source and whether it is analog.
// Unmapped sources read zero.
func readSource(p InputPoller, id components.SourceID) (float64, bool) {
	src, ok := cfg.Input.Sources[id.Key]
	if !ok {
		return 0, false
	}

	var v float64
	switch src.Kind {
	case cfg.SourceKey:
		if id.Device == controller.DeviceKeyboardMouse && p.KeyPressed(src.Key) {
			v = 1
		}
	case cfg.SourceMouseX, cfg.SourceMouseY:
		if id.Device == controller.DeviceKeyboardMouse {
			dx, dy := p.CursorDelta()
			v = dx
			if src.Kind == cfg.SourceMouseY {
				v = dy
			}
			v *= cfg.Input.MouseScale
		}
	case cfg.SourceGamepadButton:
		for _, gp := range p.Gamepads() {
			if getControllerType(p, gp) == id.Device && p.GamepadButtonPressed(gp, src.Button) {
				v = 1
			}
		}
	case cfg.SourceGamepadAxis:
		for _, gp := range p.Gamepads() {
			if getControllerType(p, gp) != id.Device {
				continue
			}
			a := p.GamepadAxis(gp, src.Axis)
			if math.Abs(a) < cfg.Input.AnalogDeadzone {
				continue
			}
			if math.Abs(a) > math.Abs(v) {
				v = a
			}
		}
	}

	if src.Invert {
		v = -v
	}
	return v, src.Kind.Analog()
}

// Cache controller types to avoid string allocation every frame
var controllerTypeCache = make(map[ebiten.GamepadID]controller.Device)

// getControllerType returns the cached pad type, detecting it by name on
// first access.
func getControllerType(p InputPoller, gpID ebiten.GamepadID) controller.Device {
	if device, ok := controllerTypeCache[gpID]; ok {
		return device
	}

	device := classifyGamepad(p.GamepadName(gpID))
	controllerTypeCache[gpID] = device
	return device
}

func classifyGamepad(name string) controller.Device {
	name = strings.ToLower(name)
	if strings.Contains(name, "ps4") || strings.Contains(name, "ps5") ||
		strings.Contains(name, "playstation") || strings.Contains(name, "dualshock") ||
		strings.Contains(name, "dualsense") {
		return controller.DevicePS4Pad
	}
	// Default gamepad to Xbox-style
	return controller.DeviceXboxPad
}

// ebitenPoller reads ebiten's global input state.
type ebitenPoller struct {
	gamepadIDs []ebiten.GamepadID
	pads       []ebiten.GamepadID

	cursorX, cursorY int
	dx, dy           float64
	haveCursor       bool
}

func (p *ebitenPoller) Poll() {
	x, y := ebiten.CursorPosition()
	if p.haveCursor {
		p.dx, p.dy = float64(x-p.cursorX), float64(y-p.cursorY)
	}
	p.cursorX, p.cursorY, p.haveCursor = x, y, true

	p.gamepadIDs = ebiten.AppendGamepadIDs(p.gamepadIDs[:0])
	p.pads = p.pads[:0]
	for _, id := range p.gamepadIDs {
		if ebiten.IsStandardGamepadLayoutAvailable(id) {
			p.pads = append(p.pads, id)
		}
	}
}

func (p *ebitenPoller) KeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

func (p *ebitenPoller) CursorDelta() (float64, float64) {
	return p.dx, p.dy
}

func (p *ebitenPoller) Gamepads() []ebiten.GamepadID {
	return p.pads
}

func (p *ebitenPoller) GamepadName(id ebiten.GamepadID) string {
	return ebiten.GamepadName(id)
}

func (p *ebitenPoller) GamepadButtonPressed(id ebiten.GamepadID, button ebiten.StandardGamepadButton) bool {
	return ebiten.IsStandardGamepadButtonPressed(id, button)
}

func (p *ebitenPoller) GamepadAxis(id ebiten.GamepadID, axis ebiten.StandardGamepadAxis) float64 {
	return ebiten.StandardGamepadAxisValue(id, axis)
}
