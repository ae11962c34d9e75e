package controller

import "github.com/go-gl/mathgl/mgl64"

// Device is a class of physical input hardware.
type Device int

const (
	DeviceKeyboardMouse Device = iota
	DeviceXboxPad
	DevicePS4Pad
)

func (d Device) String() string {
	switch d {
	case DeviceKeyboardMouse:
		return "keyboard_mouse"
	case DeviceXboxPad:
		return "xbox_pad"
	case DevicePS4Pad:
		return "ps4_pad"
	}
	return "unknown"
}

// Key names a physical input source on a device.
type Key string

const (
	KeyW      Key = "w"
	KeyA      Key = "a"
	KeyS      Key = "s"
	KeyD      Key = "d"
	KeyC      Key = "c"
	KeySpace  Key = "space"
	KeyLShift Key = "lshift"
	MouseX    Key = "mouse_x"
	MouseY    Key = "mouse_y"

	PadThumbLX Key = "pad_thumb_lx"
	PadThumbLY Key = "pad_thumb_ly"
	PadThumbRX Key = "pad_thumb_rx"
	PadThumbRY Key = "pad_thumb_ry"
	PadThumbL  Key = "pad_thumb_l" // left stick click
	PadA       Key = "pad_a"
	PadB       Key = "pad_b"
)

// ActivationMode is a set of input phases.
type ActivationMode uint8

const (
	ActivationPress ActivationMode = 1 << iota
	ActivationRelease
	ActivationHold

	ActivationAll = ActivationPress | ActivationRelease | ActivationHold
)

// Has reports whether m includes every phase of other.
func (m ActivationMode) Has(other ActivationMode) bool {
	return m&other == other
}

// ActionHandler receives one activation of an action. value is 1 or 0 for
// digital sources and the axis reading for analog ones.
type ActionHandler func(mode ActivationMode, value float64)

// ActionGroup is the action map every player action is registered in.
const ActionGroup = "player"

const (
	ActionMoveForward      = "moveforward"
	ActionMoveBack         = "moveback"
	ActionMoveRight        = "moveright"
	ActionMoveLeft         = "moveleft"
	ActionMoveGamepadX     = "movegamepad_x"
	ActionMoveGamepadY     = "movegamepad_y"
	ActionSprint           = "sprint"
	ActionCrouch           = "crouch"
	ActionJump             = "jump"
	ActionLookYaw          = "look_yaw"
	ActionLookPitch        = "look_pitch"
	ActionLookPitchGamepad = "look_pitch_gamepad"
)

// Binding ties an action to one physical source.
type Binding struct {
	Action string
	Device Device
	Key    Key
	Modes  ActivationMode
}

const pressRelease = ActivationPress | ActivationRelease

// DefaultBindings is the stock binding table.
var DefaultBindings = []Binding{
	{ActionMoveForward, DeviceKeyboardMouse, KeyW, ActivationAll},
	{ActionMoveBack, DeviceKeyboardMouse, KeyS, ActivationAll},
	{ActionMoveRight, DeviceKeyboardMouse, KeyD, ActivationAll},
	{ActionMoveLeft, DeviceKeyboardMouse, KeyA, ActivationAll},
	{ActionMoveGamepadX, DeviceXboxPad, PadThumbLX, ActivationAll},
	{ActionMoveGamepadX, DevicePS4Pad, PadThumbLX, ActivationAll},
	{ActionMoveGamepadY, DeviceXboxPad, PadThumbLY, ActivationAll},
	{ActionMoveGamepadY, DevicePS4Pad, PadThumbLY, ActivationAll},

	{ActionSprint, DeviceKeyboardMouse, KeyLShift, pressRelease},
	{ActionSprint, DeviceXboxPad, PadThumbL, pressRelease},
	{ActionSprint, DevicePS4Pad, PadThumbL, pressRelease},

	{ActionCrouch, DeviceKeyboardMouse, KeyC, ActivationPress},
	{ActionCrouch, DeviceXboxPad, PadB, ActivationPress},
	{ActionCrouch, DevicePS4Pad, PadB, ActivationPress},

	{ActionJump, DeviceKeyboardMouse, KeySpace, ActivationPress},
	{ActionJump, DeviceXboxPad, PadA, ActivationPress},
	{ActionJump, DevicePS4Pad, PadA, ActivationPress},

	{ActionLookYaw, DeviceKeyboardMouse, MouseX, ActivationAll},
	{ActionLookYaw, DeviceXboxPad, PadThumbRX, ActivationAll},
	{ActionLookYaw, DevicePS4Pad, PadThumbRX, ActivationAll},
	{ActionLookPitch, DeviceKeyboardMouse, MouseY, ActivationAll},
	{ActionLookPitchGamepad, DeviceXboxPad, PadThumbRY, ActivationAll},
	{ActionLookPitchGamepad, DevicePS4Pad, PadThumbRY, ActivationAll},
}

type namedAction struct {
	name    string
	handler ActionHandler
}

// actions lists the player's actions in registration order. Continuous axes
// overwrite their field, so the last activation of a frame wins.
func (p *Player) actions() []namedAction {
	s := &p.state
	return []namedAction{
		{ActionMoveForward, func(_ ActivationMode, v float64) { s.MovementDelta[1] = v }},
		{ActionMoveBack, func(_ ActivationMode, v float64) { s.MovementDelta[1] = -v }},
		{ActionMoveRight, func(_ ActivationMode, v float64) { s.MovementDelta[0] = v }},
		{ActionMoveLeft, func(_ ActivationMode, v float64) { s.MovementDelta[0] = -v }},
		{ActionMoveGamepadX, func(_ ActivationMode, v float64) { s.MovementDelta[0] = v }},
		{ActionMoveGamepadY, func(_ ActivationMode, v float64) { s.MovementDelta[1] = v }},
		{ActionSprint, p.onSprint},
		{ActionCrouch, p.onCrouch},
		{ActionJump, p.onJump},
		{ActionLookYaw, func(_ ActivationMode, v float64) { s.LookDelta[0] = -v }},
		{ActionLookPitch, func(_ ActivationMode, v float64) { s.LookDelta[1] = -v }},
		{ActionLookPitchGamepad, func(_ ActivationMode, v float64) { s.LookDelta[1] = v }},
	}
}

func (p *Player) initializeInput() {
	for _, a := range p.actions() {
		p.caps.Input.RegisterAction(ActionGroup, a.name, a.handler)
	}
	for _, b := range p.bindings {
		p.caps.Input.BindAction(ActionGroup, b.Action, b.Device, b.Key, b.Modes)
	}
}

func (p *Player) onSprint(mode ActivationMode, _ float64) {
	switch mode {
	case ActivationPress:
		p.state.PlayerState = Sprinting
	case ActivationRelease:
		p.state.PlayerState = Walking
	}
}

func (p *Player) onCrouch(mode ActivationMode, _ float64) {
	if mode != ActivationPress {
		return
	}
	p.state.DesiredStance = p.state.DesiredStance.Toggle()
}

func (p *Player) onJump(mode ActivationMode, _ float64) {
	if mode != ActivationPress {
		return
	}
	if p.caps.Character.IsOnGround() {
		p.caps.Character.AddVelocity(mgl64.Vec3{0, 0, p.cfg.JumpHeight})
	}
}
