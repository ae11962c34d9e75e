package config

import (
	"github.com/automoto/firstperson/controller"
	"github.com/hajimehoshi/ebiten/v2"
)

// SourceKind is how a physical source is read.
type SourceKind int

const (
	SourceKey SourceKind = iota
	SourceMouseX
	SourceMouseY
	SourceGamepadButton
	SourceGamepadAxis
)

// Analog reports whether the source produces continuous values.
func (k SourceKind) Analog() bool {
	return k == SourceMouseX || k == SourceMouseY || k == SourceGamepadAxis
}

// InputSource maps a controller key to the ebiten input that drives it.
type InputSource struct {
	Kind   SourceKind
	Key    ebiten.Key
	Button ebiten.StandardGamepadButton
	Axis   ebiten.StandardGamepadAxis
	Invert bool
}

// HotKeys are the demo keys handled by the host, not the controller.
type HotKeys struct {
	SaveTuning      ebiten.Key
	SensitivityDown ebiten.Key
	SensitivityUp   ebiten.Key
	Reset           ebiten.Key
	ToggleDebug     ebiten.Key
	Pause           ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Sources map[controller.Key]InputSource
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
	// MouseScale converts pixels of cursor travel into look units.
	MouseScale float64
	HotKeys    HotKeys
}

// Input is the global input configuration
var Input InputConfig

func resetInput() {
	Input = InputConfig{
		AnalogDeadzone: 0.15,
		MouseScale:     1,
		Sources: map[controller.Key]InputSource{
			controller.KeyW:      {Kind: SourceKey, Key: ebiten.KeyW},
			controller.KeyA:      {Kind: SourceKey, Key: ebiten.KeyA},
			controller.KeyS:      {Kind: SourceKey, Key: ebiten.KeyS},
			controller.KeyD:      {Kind: SourceKey, Key: ebiten.KeyD},
			controller.KeyC:      {Kind: SourceKey, Key: ebiten.KeyC},
			controller.KeySpace:  {Kind: SourceKey, Key: ebiten.KeySpace},
			controller.KeyLShift: {Kind: SourceKey, Key: ebiten.KeyShiftLeft},
			controller.MouseX:    {Kind: SourceMouseX},
			controller.MouseY:    {Kind: SourceMouseY},

			// Stick up reads negative; forward and look-up are positive.
			controller.PadThumbLX: {Kind: SourceGamepadAxis, Axis: ebiten.StandardGamepadAxisLeftStickHorizontal},
			controller.PadThumbLY: {Kind: SourceGamepadAxis, Axis: ebiten.StandardGamepadAxisLeftStickVertical, Invert: true},
			controller.PadThumbRX: {Kind: SourceGamepadAxis, Axis: ebiten.StandardGamepadAxisRightStickHorizontal},
			controller.PadThumbRY: {Kind: SourceGamepadAxis, Axis: ebiten.StandardGamepadAxisRightStickVertical, Invert: true},

			// Left stick click
			controller.PadThumbL: {Kind: SourceGamepadButton, Button: ebiten.StandardGamepadButtonLeftStick},
			// A / Cross button
			controller.PadA: {Kind: SourceGamepadButton, Button: ebiten.StandardGamepadButtonRightBottom},
			// B / Circle button
			controller.PadB: {Kind: SourceGamepadButton, Button: ebiten.StandardGamepadButtonRightRight},
		},
		HotKeys: HotKeys{
			SaveTuning:      ebiten.KeyF5,
			SensitivityDown: ebiten.KeyBracketLeft,
			SensitivityUp:   ebiten.KeyBracketRight,
			Reset:           ebiten.KeyR,
			ToggleDebug:     ebiten.KeyF3,
			Pause:           ebiten.KeyEscape,
		},
	}
}
