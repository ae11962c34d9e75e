package scenes

import (
	"fmt"
	"image/color"
	"io/fs"
	"sync"

	"github.com/automoto/firstperson/archetypes"
	"github.com/automoto/firstperson/components"
	cfg "github.com/automoto/firstperson/config"
	"github.com/automoto/firstperson/logger"
	"github.com/automoto/firstperson/systems"
	factory2 "github.com/automoto/firstperson/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WorldScene is a level with one first-person player, viewed from above.
type WorldScene struct {
	ecs     *ecs.ECS
	levels  fs.FS
	path    string
	watcher *cfg.Watcher
	once    sync.Once
	err     error
}

// NewWorldScene creates a scene for the TMX level at path in levels. A
// non-nil watcher reloads settings while the scene runs.
func NewWorldScene(levels fs.FS, path string, watcher *cfg.Watcher) *WorldScene {
	return &WorldScene{levels: levels, path: path, watcher: watcher}
}

func (ws *WorldScene) Update() error {
	ws.once.Do(func() {
		ws.err = ws.configure()
	})
	if ws.err != nil {
		return ws.err
	}
	ws.ecs.Update()
	return nil
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

// ECS exposes the scene's world once configured.
func (ws *WorldScene) ECS() *ecs.ECS {
	return ws.ecs
}

func (ws *WorldScene) configure() error {
	world := donburi.NewWorld()
	systems.SubscribeLifecycle(world)
	ecs := ecs.NewECS(world)

	// Order matters: input before lifecycle, lifecycle before players,
	// players before physics.
	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateInput))
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateConfigReload)
	ecs.AddSystem(systems.UpdateLifecycle)

	// Game systems wrapped with pause checks
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayers))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateObstacles))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCharacters))
	ecs.AddSystem(systems.UpdateView)

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawPlayers)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)

	ws.ecs = ecs

	// Create the level entity and load level data FIRST.
	level, err := factory2.CreateLevel(ws.ecs, ws.levels, ws.path)
	if err != nil {
		return err
	}
	levelData := components.Level.Get(level).Level

	// Now create the space for collision detection using the level's dimensions.
	spaceEntry := factory2.CreateSpace(ws.ecs, levelData.Width, levelData.Depth)
	space := components.Space.Get(spaceEntry)

	for _, o := range levelData.Obstacles {
		if o.Moving() {
			factory2.CreateMovingObstacle(ws.ecs, space, o)
		} else {
			factory2.CreateObstacle(ws.ecs, space, o)
		}
	}

	spawn := levelData.Spawns[0]
	if _, err := factory2.CreatePlayer(ws.ecs, space, spawn); err != nil {
		return err
	}
	factory2.CreateView(ws.ecs, mgl64.Vec2{spawn.X, spawn.Y})

	systems.GetOrCreateClock(ws.ecs)
	systems.GetOrCreateSettings(ws.ecs)
	if ws.watcher != nil {
		source := archetypes.ConfigSource.Spawn(ws.ecs)
		components.ConfigSource.SetValue(source, components.ConfigSourceData{
			Path:    ws.watcher.Path(),
			Watcher: ws.watcher,
		})
	}

	components.GameplayStartedEvent.Publish(ws.ecs.World, components.GameplayStarted{})

	logger.L().Info("Level loaded",
		"level", levelData.Name,
		"obstacles", len(levelData.Obstacles),
		"spawn", fmt.Sprintf("%.1f,%.1f", spawn.X, spawn.Y),
	)
	return nil
}
