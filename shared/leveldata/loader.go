package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

const (
	groupObstacles = "Obstacles"
	groupSpawns    = "PlayerSpawn"
)

// Load parses a TMX file. It takes an fs.FS so callers can pass embed.FS or
// os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth == 0 || levelMap.TileHeight == 0 || levelMap.Width == 0 || levelMap.Height == 0 {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrEmptyLevel)
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	level := &Level{
		Name:  strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width: float64(levelMap.Width),
		Depth: float64(levelMap.Height),
	}

	// toWorld converts a map rectangle in pixels to a world footprint in metres.
	toWorld := func(x, y, w, h float64) (float64, float64, float64, float64) {
		wx := x / tileW
		ww := w / tileW
		wh := h / tileH
		wy := level.Depth - y/tileH - wh
		return wx, wy, ww, wh
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case groupObstacles:
			for _, o := range og.Objects {
				x, y, w, h := toWorld(o.X, o.Y, o.Width, o.Height)
				obstacle := Obstacle{
					Name:        o.Name,
					X:           x,
					Y:           y,
					W:           w,
					H:           h,
					Bottom:      o.Properties.GetFloat("bottom"),
					Top:         o.Properties.GetFloat("top"),
					MoveSeconds: o.Properties.GetFloat("moveSeconds"),
				}
				obstacle.MoveTo = obstacle.Bottom
				if o.Properties.GetString("moveTo") != "" {
					obstacle.MoveTo = o.Properties.GetFloat("moveTo")
				}
				if err := validateObstacle(obstacle); err != nil {
					return nil, fmt.Errorf("%s: obstacle %d %q: %w", tmxPath, o.ID, o.Name, err)
				}
				level.Obstacles = append(level.Obstacles, obstacle)
			}
		case groupSpawns:
			for _, o := range og.Objects {
				x, y, _, _ := toWorld(o.X, o.Y, 0, 0)
				level.Spawns = append(level.Spawns, Spawn{
					X:   x,
					Y:   y,
					Z:   o.Properties.GetFloat("z"),
					Yaw: o.Properties.GetFloat("yaw"),
				})
			}
		}
	}

	if len(level.Spawns) == 0 {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoSpawn)
	}

	// Spawns left to right for a stable first spawn.
	sort.SliceStable(level.Spawns, func(i, j int) bool {
		return level.Spawns[i].X < level.Spawns[j].X
	})

	return level, nil
}

func validateObstacle(o Obstacle) error {
	switch {
	case o.W <= 0 || o.H <= 0:
		return fmt.Errorf("%w: empty footprint", ErrBadObstacle)
	case o.Top <= o.Bottom:
		return fmt.Errorf("%w: top %v not above bottom %v", ErrBadObstacle, o.Top, o.Bottom)
	case o.MoveSeconds < 0:
		return fmt.Errorf("%w: negative moveSeconds", ErrBadObstacle)
	}
	return nil
}

// LoadAll loads every .tmx file in dir, keyed by stem name, plus the sorted
// list of names.
func LoadAll(fsys fs.FS, dir string) (map[string]*Level, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		level, err := Load(fsys, path)
		if err != nil {
			return nil, nil, err
		}
		levels[level.Name] = level
		names = append(names, level.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
