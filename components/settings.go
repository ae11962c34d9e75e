package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// SettingsData is host-side runtime settings changed by hot keys.
type SettingsData struct {
	Debug bool
	// Pressed holds last frame's state of each hot key.
	Pressed map[ebiten.Key]bool
	// Status is a short HUD message and the frame it expires.
	Status       string
	StatusExpiry uint64
}

var Settings = donburi.NewComponentType[SettingsData]()
