package main

import (
	"errors"
	"flag"
	"image"
	"io/fs"
	"os"

	"github.com/automoto/firstperson/assets"
	"github.com/automoto/firstperson/config"
	"github.com/automoto/firstperson/fonts"
	"github.com/automoto/firstperson/logger"
	"github.com/automoto/firstperson/scenes"
	"github.com/automoto/firstperson/shared/leveldata"
	"github.com/automoto/firstperson/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

const appName = "firstperson"

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(levels fs.FS, watcher *config.Watcher) (*Game, error) {
	if err := fonts.LoadDefaults(config.UI.HUDFontSize); err != nil {
		return nil, err
	}

	g := &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewWorldScene(levels, config.Level.Path, watcher),
	}
	return g, nil
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	settingsPath := flag.String("config", "", "YAML settings file, reloaded on change")
	levelDir := flag.String("levels", "", "Directory to load levels from instead of the embedded ones (must contain levels/)")
	level := flag.String("level", "", "Level file to play, relative to the level directory")
	debug := flag.Bool("debug", false, "Start with the debug overlay")
	list := flag.Bool("list", false, "Validate and list the available levels, then exit")
	flag.Parse()

	log := logger.Init(logger.Config{Level: config.Logging.Level, Format: config.Logging.Format})

	if *settingsPath != "" {
		s, err := config.Load(*settingsPath)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			log.Warn("Settings file not found, using defaults", "path", *settingsPath)
		case err != nil:
			log.Error("Failed to load settings", "path", *settingsPath, "error", err)
			os.Exit(1)
		default:
			config.Apply(s)
			log = logger.Init(logger.Config{Level: config.Logging.Level, Format: config.Logging.Format})
		}
	}
	if *debug {
		config.Debug.Enabled = true
	}
	if *level != "" {
		config.Level.Path = *level
	}

	// Initialize persistence and load saved tuning
	// Failures are logged by the systems package; the game runs without them.
	if err := systems.InitPersistence(appName); err == nil {
		if saved, err := systems.LoadTuning(); err == nil && saved != nil {
			if tuned, err := saved.Apply(config.Player); err != nil {
				log.Warn("Ignoring saved tuning", "error", err)
			} else {
				config.Player = tuned
			}
		}
	}

	var watcher *config.Watcher
	if *settingsPath != "" {
		w, err := config.NewWatcher(*settingsPath)
		if err != nil {
			log.Warn("Settings hot reload disabled", "error", err)
		} else {
			watcher = w
			defer watcher.Close()
		}
	}

	levels := assets.Levels()
	if *levelDir != "" {
		levels = os.DirFS(*levelDir)
	}

	if *list {
		_, names, err := leveldata.LoadAll(levels, assets.LevelDir)
		if err != nil {
			log.Error("Failed to load levels", "error", err)
			os.Exit(1)
		}
		for _, name := range names {
			log.Info("Level", "name", name, "path", assets.LevelDir+"/"+name+".tmx")
		}
		return
	}

	game, err := NewGame(levels, watcher)
	if err != nil {
		log.Error("Failed to start", "error", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)
	systems.SetCursorCaptured(true)

	if err := ebiten.RunGame(game); err != nil {
		log.Error("Game exited", "error", err)
		os.Exit(1)
	}
}
