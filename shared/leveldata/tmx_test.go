package leveldata

import (
	"testing"
	"testing/fstest"

	"github.com/automoto/gigaguy/shared/gamemath"
	"github.com/automoto/gigaguy/shared/tile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="32" tileheight="32" infinite="0" nextlayerid="3" nextobjectid="2">
 <tileset firstgid="1" name="terrain" tilewidth="32" tileheight="32" tilecount="2" columns="2">
  <image source="terrain.png" width="64" height="32"/>
  <tile id="1">
   <properties>
    <property name="slope" value="45R"/>
   </properties>
  </tile>
 </tileset>
 <layer id="1" name="solid" width="4" height="3">
  <data encoding="csv">
0,0,0,0,
0,0,2,1,
1,1,1,1
</data>
 </layer>
 <objectgroup id="2" name="PlayerSpawn">
  <object id="1" x="40" y="70"/>
 </objectgroup>
</map>
`

func TestLoadTMX(t *testing.T) {
	fsys := fstest.MapFS{"levels/hill.tmx": {Data: []byte(testTMX)}}

	lvl, err := LoadFile(fsys, "levels/hill.tmx", grid)
	require.NoError(t, err)

	assert.Equal(t, "hill", lvl.Name)
	assert.Equal(t, 4, lvl.Cols)
	assert.Equal(t, 3, lvl.Rows)
	require.True(t, lvl.HasSpawn)
	assert.Equal(t, gamemath.Cell{Col: 1, Row: 2}, lvl.Spawn)

	require.Len(t, lvl.Tiles, 6)
	assert.Equal(t, tile.Slope(2, 1, gamemath.Slope45R), lvl.Tiles[0])
	assert.Equal(t, tile.Solid(3, 1), lvl.Tiles[1])
}

func TestLoadTMXRejectsMismatchedGrid(t *testing.T) {
	fsys := fstest.MapFS{"hill.tmx": {Data: []byte(testTMX)}}

	_, err := LoadTMX(fsys, "hill.tmx", gamemath.Grid{CellWidth: 16, CellHeight: 16})
	assert.ErrorIs(t, err, ErrTileSize)
}
