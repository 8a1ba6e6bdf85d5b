package factory

import (
	"fmt"
	"log"

	"github.com/automoto/gigaguy/archetypes"
	"github.com/automoto/gigaguy/components"
	"github.com/automoto/gigaguy/shared/gamemath"
	"github.com/automoto/gigaguy/shared/leveldata"
	"github.com/yohamta/donburi"
)

// CreateLevel builds the tile catalog for lvl and stores it on a new level
// entity. The catalog's resolv space also receives the player's object.
func CreateLevel(w donburi.World, lvl *leveldata.Level, grid gamemath.Grid) (*donburi.Entry, error) {
	catalog, err := lvl.Catalog(grid)
	if err != nil {
		return nil, fmt.Errorf("create level %s: %w", lvl.Name, err)
	}

	level := archetypes.Level.Spawn(w)
	components.Level.SetValue(level, components.LevelData{
		Source:  lvl,
		Catalog: catalog,
	})
	log.Printf("Created level %s with %d tiles", lvl.Name, catalog.Len())
	return level, nil
}

// SpawnPosition returns the top-left of a standing box of the given size
// resting on the bottom of the level's spawn cell. Levels without a marker
// spawn in the top-left cell.
func SpawnPosition(lvl *leveldata.Level, grid gamemath.Grid, width, height float64) (float64, float64) {
	cell := lvl.Spawn
	if !lvl.HasSpawn {
		cell = gamemath.Cell{}
	}
	r := grid.CellRect(cell)
	return r.X + (r.W-width)/2, r.Bottom() - height
}
