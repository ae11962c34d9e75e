package components

import (
	"github.com/automoto/firstperson/config"
	"github.com/yohamta/donburi"
)

// ConfigSourceData is the settings file a scene reloads from.
type ConfigSourceData struct {
	Path    string
	Watcher *config.Watcher
}

var ConfigSource = donburi.NewComponentType[ConfigSourceData]()
