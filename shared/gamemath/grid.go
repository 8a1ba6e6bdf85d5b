package gamemath

import "math"

// Axis selects the horizontal or vertical component of a grid operation.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// Cell addresses one grid square by column and row.
type Cell struct {
	Col, Row int
}

// Grid describes the fixed cell size of a tile map.
type Grid struct {
	CellWidth  float64
	CellHeight float64
}

// CellSize returns the cell extent along axis.
func (g Grid) CellSize(axis Axis) float64 {
	if axis == AxisX {
		return g.CellWidth
	}
	return g.CellHeight
}

// FindGridCoordinate snaps coord to the leading edge of the cell containing it.
func (g Grid) FindGridCoordinate(coord float64, axis Axis) float64 {
	size := g.CellSize(axis)
	return math.Floor(coord/size) * size
}

// CellAt returns the cell containing the world point (x, y).
func (g Grid) CellAt(x, y float64) Cell {
	return Cell{
		Col: int(math.Floor(x / g.CellWidth)),
		Row: int(math.Floor(y / g.CellHeight)),
	}
}

// CellRect returns the world rectangle covered by c.
func (g Grid) CellRect(c Cell) Rect {
	return Rect{
		X: float64(c.Col) * g.CellWidth,
		Y: float64(c.Row) * g.CellHeight,
		W: g.CellWidth,
		H: g.CellHeight,
	}
}
