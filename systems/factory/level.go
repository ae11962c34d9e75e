package factory

import (
	"fmt"
	"io/fs"

	"github.com/automoto/firstperson/archetypes"
	"github.com/automoto/firstperson/components"
	"github.com/automoto/firstperson/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel loads the TMX level at path from fsys.
func CreateLevel(ecs *ecs.ECS, fsys fs.FS, path string) (*donburi.Entry, error) {
	lvl, err := leveldata.Load(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("create level: %w", err)
	}

	level := archetypes.Level.Spawn(ecs)
	components.Level.Set(level, &components.LevelData{
		Level: lvl,
		Path:  path,
	})
	return level, nil
}
