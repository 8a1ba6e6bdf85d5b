package assets

import (
	"embed"
	"io/fs"

	"github.com/automoto/gigaguy/shared/gamemath"
	"github.com/automoto/gigaguy/shared/leveldata"
)

// LevelDir is the directory inside Levels holding the bundled level files.
const LevelDir = "levels"

var (
	//go:embed all:levels
	levelFS embed.FS
)

// Levels returns the bundled level files.
func Levels() fs.FS {
	return levelFS
}

// LoadLevels loads every bundled level.
func LoadLevels(grid gamemath.Grid) (map[string]*leveldata.Level, []string, error) {
	return leveldata.LoadAllLevels(levelFS, LevelDir, grid)
}
