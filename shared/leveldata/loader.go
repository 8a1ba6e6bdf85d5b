package leveldata

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"log"
	"path"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/automoto/gigaguy/shared/gamemath"
	"github.com/automoto/gigaguy/shared/tile"
)

// Parse reads a text level: one line per grid row, one character per cell.
func Parse(r io.Reader, name string) (*Level, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read level %s: %w", name, err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("level %s: invalid utf-8: %w", name, ErrMalformedLevel)
	}

	lvl := &Level{Name: name}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for row := 0; scanner.Scan(); row++ {
		line := scanner.Text()
		lvl.Rows = row + 1

		col := 0
		for _, ch := range line {
			if err := lvl.place(ch, col, row); err != nil {
				return nil, fmt.Errorf("level %s: %w", name, err)
			}
			col++
		}
		if col > lvl.Cols {
			lvl.Cols = col
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan level %s: %w", name, err)
	}
	if lvl.Rows == 0 {
		return nil, fmt.Errorf("level %s: %w", name, ErrEmptyLevel)
	}

	return lvl, nil
}

func (l *Level) place(ch rune, col, row int) error {
	if ch == SpawnMarker {
		if l.HasSpawn {
			return fmt.Errorf("spawn at (%d,%d): %w", col, row, ErrDuplicateSpawn)
		}
		l.Spawn = gamemath.Cell{Col: col, Row: row}
		l.HasSpawn = true
		return nil
	}

	ct, ok := charMap[ch]
	if !ok {
		return nil
	}
	l.Tiles = append(l.Tiles, tile.Placement{
		Cell:  gamemath.Cell{Col: col, Row: row},
		Kind:  ct.kind,
		Slope: ct.slope,
	})
	return nil
}

// LoadFile loads a level from fsys, choosing the parser by extension:
// .tmx files go through go-tiled, everything else is read as a text grid.
// It takes an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadFile(fsys fs.FS, levelPath string, grid gamemath.Grid) (*Level, error) {
	name := strings.TrimSuffix(path.Base(levelPath), path.Ext(levelPath))

	if strings.EqualFold(path.Ext(levelPath), ".tmx") {
		return LoadTMX(fsys, levelPath, grid)
	}

	f, err := fsys.Open(levelPath)
	if err != nil {
		return nil, fmt.Errorf("open level %s: %w", levelPath, err)
	}
	defer f.Close()

	lvl, err := Parse(f, name)
	if err != nil {
		return nil, err
	}

	log.Printf("Loaded level %s: %d tiles, %dx%d cells", lvl.Name, len(lvl.Tiles), lvl.Cols, lvl.Rows)
	return lvl, nil
}

// LoadAllLevels discovers every .txt and .tmx level in dir within fsys and
// returns them keyed by stem name plus the sorted list of names.
func LoadAllLevels(fsys fs.FS, dir string, grid gamemath.Grid) (map[string]*Level, []string, error) {
	var matches []string
	for _, pattern := range []string{dir + "/*.txt", dir + "/*.tmx"} {
		m, err := fs.Glob(fsys, pattern)
		if err != nil {
			return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
		}
		matches = append(matches, m...)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no levels found in %s: %w", dir, fs.ErrNotExist)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))
	for _, p := range matches {
		lvl, err := LoadFile(fsys, p, grid)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", p, err)
		}
		levels[lvl.Name] = lvl
		names = append(names, lvl.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
