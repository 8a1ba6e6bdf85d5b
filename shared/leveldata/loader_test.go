package leveldata

import (
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/automoto/gigaguy/shared/gamemath"
	"github.com/automoto/gigaguy/shared/tile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var grid = gamemath.Grid{CellWidth: 32, CellHeight: 32}

func TestParseMapsCharactersToTiles(t *testing.T) {
	src := "" +
		"  @     \n" +
		"     /1x\n" +
		"1111111\n"

	lvl, err := Parse(strings.NewReader(src), "test")
	require.NoError(t, err)

	assert.Equal(t, 3, lvl.Rows)
	assert.Equal(t, 8, lvl.Cols)
	require.True(t, lvl.HasSpawn)
	assert.Equal(t, gamemath.Cell{Col: 2, Row: 0}, lvl.Spawn)

	require.Len(t, lvl.Tiles, 9)
	assert.Equal(t, tile.Slope(5, 1, gamemath.Slope45R), lvl.Tiles[0])
	assert.Equal(t, tile.Solid(6, 1), lvl.Tiles[1])
	assert.Equal(t, tile.Solid(0, 2), lvl.Tiles[2])
}

func TestParseEveryCharacter(t *testing.T) {
	for ch, want := range charMap {
		lvl, err := Parse(strings.NewReader(string(ch)), "one")
		require.NoError(t, err)
		require.Len(t, lvl.Tiles, 1, "char %q", ch)
		assert.Equal(t, want.kind, lvl.Tiles[0].Kind)
		if want.kind == tile.KindSlope {
			assert.Equal(t, want.slope, lvl.Tiles[0].Slope)
			assert.Equal(t, ch, CharFor(tile.KindSlope, want.slope))
		}
	}
	assert.Equal(t, '1', CharFor(tile.KindSolid, 0))
}

func TestParseVaryingRowLengths(t *testing.T) {
	lvl, err := Parse(strings.NewReader("1\r\n111\n\n11"), "ragged")
	require.NoError(t, err)

	assert.Equal(t, 4, lvl.Rows)
	assert.Equal(t, 3, lvl.Cols)
	assert.Len(t, lvl.Tiles, 6)

	c, err := lvl.Catalog(grid)
	require.NoError(t, err)
	_, ok := c.Lookup(64, 0)
	assert.False(t, ok, "columns past a short row are empty")
	_, ok = c.Lookup(64, 32)
	assert.True(t, ok)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"empty", "", ErrEmptyLevel},
		{"two spawns", "@ @", ErrDuplicateSpawn},
		{"invalid utf-8", "1\xff1", ErrMalformedLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lvl, err := Parse(strings.NewReader(tt.src), tt.name)
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, lvl)
		})
	}
}

func TestLoadFile(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/intro.txt": {Data: []byte("@\n11\n")},
		"levels/notes.md":  {Data: []byte("not a level")},
	}

	lvl, err := LoadFile(fsys, "levels/intro.txt", grid)
	require.NoError(t, err)
	assert.Equal(t, "intro", lvl.Name)
	assert.Len(t, lvl.Tiles, 2)

	_, err = LoadFile(fsys, "levels/missing.txt", grid)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoadAllLevels(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/b.txt": {Data: []byte("1")},
		"levels/a.txt": {Data: []byte("11")},
	}

	levels, names, err := LoadAllLevels(fsys, "levels", grid)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)
	assert.Len(t, levels["a"].Tiles, 2)

	_, _, err = LoadAllLevels(fstest.MapFS{}, "levels", grid)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
