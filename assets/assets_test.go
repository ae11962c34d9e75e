package assets

import (
	"testing"

	"github.com/automoto/firstperson/shared/leveldata"
)

func TestEmbeddedLevelsLoad(t *testing.T) {
	levels, names, err := leveldata.LoadAll(Levels(), LevelDir)
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	for _, name := range names {
		if len(levels[name].Spawns) == 0 {
			t.Errorf("%s: no spawns", name)
		}
	}
	if levels["arena"] == nil {
		t.Errorf("levels = %v, want arena", names)
	}
}

func TestArenaLayout(t *testing.T) {
	level, err := leveldata.Load(Levels(), "levels/arena.tmx")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if level.Width != 40 || level.Depth != 30 {
		t.Errorf("size = %vx%v, want 40x30", level.Width, level.Depth)
	}

	moving := 0
	for _, o := range level.Obstacles {
		if o.Moving() {
			moving++
		}
	}
	if moving != 1 {
		t.Errorf("moving obstacles = %d, want 1", moving)
	}
	// Spawns are sorted left to right.
	if level.Spawns[0].X != 20 || level.Spawns[0].Y != 15 {
		t.Errorf("first spawn = (%v, %v), want (20, 15)", level.Spawns[0].X, level.Spawns[0].Y)
	}
}
