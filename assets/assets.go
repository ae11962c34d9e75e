package assets

import (
	"embed"
	"io/fs"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// LevelDir is the directory of TMX levels inside Levels.
const LevelDir = "levels"

// Levels returns the embedded level files.
func Levels() fs.FS {
	return assetFS
}
