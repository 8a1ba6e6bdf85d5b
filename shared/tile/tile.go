// Package tile holds the static level geometry the collision resolver reads:
// cell-aligned tiles keyed by grid cell, mirrored into a resolv space.
package tile

import "github.com/automoto/gigaguy/shared/gamemath"

// Kind discriminates plain blocks from slopes.
type Kind int

const (
	KindSolid Kind = iota
	KindSlope
)

func (k Kind) String() string {
	if k == KindSlope {
		return "slope"
	}
	return "solid"
}

// Tile is one occupied grid cell. Slope is only meaningful for KindSlope.
type Tile struct {
	Rect  gamemath.Rect
	Kind  Kind
	Slope gamemath.SlopeType
}

// Placement positions a tile by cell before the catalog resolves it to world units.
type Placement struct {
	Cell  gamemath.Cell
	Kind  Kind
	Slope gamemath.SlopeType
}

// Solid returns a plain tile placement at (col, row).
func Solid(col, row int) Placement {
	return Placement{Cell: gamemath.Cell{Col: col, Row: row}, Kind: KindSolid}
}

// Slope returns a slope tile placement at (col, row).
func Slope(col, row int, t gamemath.SlopeType) Placement {
	return Placement{Cell: gamemath.Cell{Col: col, Row: row}, Kind: KindSlope, Slope: t}
}
