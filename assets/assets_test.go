package assets

import (
	"testing"

	"github.com/automoto/gigaguy/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBundledLevelsLoad(t *testing.T) {
	grid := gamemath.Grid{CellWidth: 32, CellHeight: 32}
	levels, names, err := LoadLevels(grid)
	require.NoError(t, err)
	assert.Equal(t, []string{"hill", "intro"}, names)

	for _, name := range names {
		lvl := levels[name]
		assert.True(t, lvl.HasSpawn, name)

		catalog, err := lvl.Catalog(grid)
		require.NoError(t, err, name)
		_, occupied := catalog.At(lvl.Spawn)
		assert.False(t, occupied, "%s spawns inside a tile", name)
	}
}
