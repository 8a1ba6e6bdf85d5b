// Package leveldata parses level sources (plain text grids and Tiled TMX
// maps) into cell placements. It has no dependencies on ebitengine or donburi.
package leveldata

import (
	"errors"

	"github.com/automoto/gigaguy/shared/gamemath"
	"github.com/automoto/gigaguy/shared/tile"
)

var (
	ErrEmptyLevel     = errors.New("level has no rows")
	ErrMalformedLevel = errors.New("malformed level source")
	ErrDuplicateSpawn = errors.New("level has more than one spawn marker")
	ErrTileSize       = errors.New("map tile size does not match grid")
	ErrNoSolidLayer   = errors.New("map has no solid layer")
)

// Level is a parsed level: its extent in cells, its tiles and the actor spawn.
type Level struct {
	Name     string
	Cols     int
	Rows     int
	Tiles    []tile.Placement
	Spawn    gamemath.Cell
	HasSpawn bool
}

// Catalog builds the immutable tile catalog for this level on grid.
func (l *Level) Catalog(grid gamemath.Grid) (*tile.Catalog, error) {
	return tile.NewCatalog(grid, l.Cols, l.Rows, l.Tiles)
}
