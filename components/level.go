package components

import (
	"github.com/automoto/gigaguy/shared/leveldata"
	"github.com/automoto/gigaguy/shared/tile"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Source  *leveldata.Level
	Catalog *tile.Catalog
}

var Level = donburi.NewComponentType[LevelData]()
