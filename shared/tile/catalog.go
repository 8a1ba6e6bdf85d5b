package tile

import (
	"errors"
	"fmt"

	"github.com/automoto/gigaguy/shared/gamemath"
	"github.com/solarlune/resolv"
)

// Resolv tags carried by tile objects in the catalog space.
const (
	TagSolid = "solid"
	TagSlope = "ramp"
)

var (
	ErrOutOfBounds = errors.New("tile outside level bounds")
	ErrOccupied    = errors.New("cell already holds a tile")
)

// Catalog is the immutable set of tiles for one level. Lookups are exact
// cell matches; the resolv space mirrors the same tiles for shape queries.
type Catalog struct {
	grid  gamemath.Grid
	cols  int
	rows  int
	tiles map[gamemath.Cell]Tile
	order []gamemath.Cell
	space *resolv.Space
}

// NewCatalog builds a catalog of cols x rows cells from placements.
func NewCatalog(grid gamemath.Grid, cols, rows int, placements []Placement) (*Catalog, error) {
	c := &Catalog{
		grid:  grid,
		cols:  cols,
		rows:  rows,
		tiles: make(map[gamemath.Cell]Tile, len(placements)),
		space: resolv.NewSpace(
			cols*int(grid.CellWidth), rows*int(grid.CellHeight),
			int(grid.CellWidth), int(grid.CellHeight),
		),
	}

	for _, p := range placements {
		if err := c.add(p); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Catalog) add(p Placement) error {
	if p.Cell.Col < 0 || p.Cell.Row < 0 || p.Cell.Col >= c.cols || p.Cell.Row >= c.rows {
		return fmt.Errorf("place %s at (%d,%d): %w", p.Kind, p.Cell.Col, p.Cell.Row, ErrOutOfBounds)
	}
	if _, ok := c.tiles[p.Cell]; ok {
		return fmt.Errorf("place %s at (%d,%d): %w", p.Kind, p.Cell.Col, p.Cell.Row, ErrOccupied)
	}

	t := Tile{Rect: c.grid.CellRect(p.Cell), Kind: p.Kind, Slope: p.Slope}
	c.tiles[p.Cell] = t
	c.order = append(c.order, p.Cell)

	var obj *resolv.Object
	if t.Kind == KindSlope {
		obj = resolv.NewObject(t.Rect.X, t.Rect.Y, t.Rect.W, t.Rect.H, TagSlope, t.Slope.String())
	} else {
		obj = resolv.NewObject(t.Rect.X, t.Rect.Y, t.Rect.W, t.Rect.H, TagSolid)
	}
	obj.SetShape(resolv.NewRectangle(0, 0, t.Rect.W, t.Rect.H))
	obj.Data = t
	c.space.Add(obj)
	return nil
}

// Lookup snaps (x, y) to its cell and returns the tile stored there.
func (c *Catalog) Lookup(x, y float64) (Tile, bool) {
	cx := c.grid.FindGridCoordinate(x, gamemath.AxisX)
	cy := c.grid.FindGridCoordinate(y, gamemath.AxisY)
	return c.At(c.grid.CellAt(cx, cy))
}

// At returns the tile stored in cell.
func (c *Catalog) At(cell gamemath.Cell) (Tile, bool) {
	t, ok := c.tiles[cell]
	return t, ok
}

// Occupied reports whether cell holds any tile.
func (c *Catalog) Occupied(cell gamemath.Cell) bool {
	_, ok := c.tiles[cell]
	return ok
}

// Tiles returns every tile in placement order.
func (c *Catalog) Tiles() []Tile {
	out := make([]Tile, 0, len(c.order))
	for _, cell := range c.order {
		out = append(out, c.tiles[cell])
	}
	return out
}

func (c *Catalog) Len() int             { return len(c.tiles) }
func (c *Catalog) Grid() gamemath.Grid  { return c.grid }
func (c *Catalog) Space() *resolv.Space { return c.space }

// Bounds returns the level extent in world units.
func (c *Catalog) Bounds() gamemath.Rect {
	return gamemath.Rect{
		W: float64(c.cols) * c.grid.CellWidth,
		H: float64(c.rows) * c.grid.CellHeight,
	}
}
