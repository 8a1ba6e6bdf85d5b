package leveldata

import (
	"github.com/automoto/gigaguy/shared/gamemath"
	"github.com/automoto/gigaguy/shared/tile"
)

// SpawnMarker marks the actor's spawn cell in a text level. The cell itself is empty.
const SpawnMarker = '@'

type charTile struct {
	kind  tile.Kind
	slope gamemath.SlopeType
}

// charMap is the closed character table for text levels. Anything not
// listed is empty space.
var charMap = map[rune]charTile{
	'1':  {kind: tile.KindSolid},
	'/':  {kind: tile.KindSlope, slope: gamemath.Slope45R},
	'\\': {kind: tile.KindSlope, slope: gamemath.Slope45L},
	'a':  {kind: tile.KindSlope, slope: gamemath.Slope22R1},
	'b':  {kind: tile.KindSlope, slope: gamemath.Slope22R2},
	'A':  {kind: tile.KindSlope, slope: gamemath.Slope22L1},
	'B':  {kind: tile.KindSlope, slope: gamemath.Slope22L2},
	'c':  {kind: tile.KindSlope, slope: gamemath.Slope11R1},
	'd':  {kind: tile.KindSlope, slope: gamemath.Slope11R2},
	'e':  {kind: tile.KindSlope, slope: gamemath.Slope11R3},
	'f':  {kind: tile.KindSlope, slope: gamemath.Slope11R4},
	'C':  {kind: tile.KindSlope, slope: gamemath.Slope11L1},
	'D':  {kind: tile.KindSlope, slope: gamemath.Slope11L2},
	'E':  {kind: tile.KindSlope, slope: gamemath.Slope11L3},
	'F':  {kind: tile.KindSlope, slope: gamemath.Slope11L4},
}

// CharFor returns the level character that encodes a tile, for level editors
// and round-trip tests.
func CharFor(kind tile.Kind, slope gamemath.SlopeType) rune {
	for r, ct := range charMap {
		if ct.kind != kind {
			continue
		}
		if kind == tile.KindSolid || ct.slope == slope {
			return r
		}
	}
	return ' '
}
