package systems

import (
	"github.com/automoto/firstperson/components"
	cfg "github.com/automoto/firstperson/config"
	"github.com/automoto/firstperson/logger"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateConfigReload applies settings file edits reported by the watcher.
func UpdateConfigReload(e *ecs.ECS) {
	entry, ok := components.ConfigSource.First(e.World)
	if !ok {
		return
	}
	src := components.ConfigSource.Get(entry)
	if src.Watcher == nil {
		return
	}

	changed := false
	for drained := false; !drained; {
		select {
		case _, ok := <-src.Watcher.Events:
			if !ok {
				src.Watcher = nil
				return
			}
			changed = true
		case err, ok := <-src.Watcher.Errors:
			if !ok {
				src.Watcher = nil
				return
			}
			logger.L().Warn("Settings watcher error", "error", err)
		default:
			drained = true
		}
	}

	if changed {
		if err := ReloadConfig(e, src.Path); err != nil {
			setStatus(e.World, GetOrCreateSettings(e), "Settings rejected")
		}
	}
}

// ReloadConfig reads the settings file, applies it and publishes the new
// player config. Character shape changes re-physicalize every character.
func ReloadConfig(e *ecs.ECS, path string) error {
	s, err := cfg.Load(path)
	if err != nil {
		logger.L().Warn("Settings reload failed", "path", path, "error", err)
		return err
	}

	prevCharacter := cfg.Character
	cfg.Apply(s)
	logger.Init(logger.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})

	components.PropertyChangedEvent.Publish(e.World, components.PropertyChanged{Config: cfg.Player})

	if cfg.Character != prevCharacter {
		params := CharacterParams()
		components.Character.Each(e.World, func(entry *donburi.Entry) {
			adapter := NewCharacterAdapter(entry)
			adapter.SetPhysicsParams(params)
			adapter.Physicalize()
		})
	}

	logger.L().Info("Settings reloaded", "path", path)
	return nil
}
