package components

import (
	"github.com/automoto/firstperson/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Level *leveldata.Level
	Path  string
}

var Level = donburi.NewComponentType[LevelData]()
