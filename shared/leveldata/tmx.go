package leveldata

import (
	"fmt"
	"io/fs"
	"log"
	"math"
	"path"
	"strings"

	"github.com/automoto/gigaguy/shared/gamemath"
	"github.com/automoto/gigaguy/shared/tile"
	"github.com/lafriks/go-tiled"
)

// TMX conventions: tiles live on the "solid" tile layer, slope tiles carry a
// "slope" property naming a gamemath.SlopeType, and the spawn is the first
// object of the "PlayerSpawn" object group.
const (
	SolidLayerName  = "solid"
	SlopeProperty   = "slope"
	SpawnObjectName = "PlayerSpawn"
)

// LoadTMX parses a Tiled map into a Level. The map's tile size must match grid.
func LoadTMX(fsys fs.FS, tmxPath string, grid gamemath.Grid) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	if float64(levelMap.TileWidth) != grid.CellWidth || float64(levelMap.TileHeight) != grid.CellHeight {
		return nil, fmt.Errorf("load TMX %s: %dx%d tiles on a %vx%v grid: %w",
			tmxPath, levelMap.TileWidth, levelMap.TileHeight, grid.CellWidth, grid.CellHeight, ErrTileSize)
	}

	lvl := &Level{
		Name: strings.TrimSuffix(path.Base(tmxPath), path.Ext(tmxPath)),
		Cols: levelMap.Width,
		Rows: levelMap.Height,
	}

	var layer *tiled.Layer
	for _, l := range levelMap.Layers {
		if l.Name == SolidLayerName {
			layer = l
			break
		}
	}
	if layer == nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, ErrNoSolidLayer)
	}

	for y := 0; y < levelMap.Height; y++ {
		for x := 0; x < levelMap.Width; x++ {
			t := layer.Tiles[y*levelMap.Width+x]
			if t.IsNil() {
				continue
			}

			p := tile.Solid(x, y)
			if tilesetTile, err := t.Tileset.GetTilesetTile(t.ID); err == nil {
				if name := tilesetTile.Properties.GetString(SlopeProperty); name != "" {
					slope, err := gamemath.ParseSlopeType(name)
					if err != nil {
						return nil, fmt.Errorf("load TMX %s: tile (%d,%d): %w", tmxPath, x, y, err)
					}
					p = tile.Slope(x, y, slope)
				}
			}
			lvl.Tiles = append(lvl.Tiles, p)
		}
	}

	for _, og := range levelMap.ObjectGroups {
		if og.Name != SpawnObjectName || len(og.Objects) == 0 {
			continue
		}
		o := og.Objects[0]
		lvl.Spawn = gamemath.Cell{
			Col: int(math.Floor(o.X / grid.CellWidth)),
			Row: int(math.Floor(o.Y / grid.CellHeight)),
		}
		lvl.HasSpawn = true
		break
	}

	log.Printf("Loaded level %s: %d tiles, %dx%d cells", lvl.Name, len(lvl.Tiles), lvl.Cols, lvl.Rows)
	return lvl, nil
}
