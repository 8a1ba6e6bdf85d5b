package systems

import (
	"strings"
	"testing"

	"github.com/automoto/gigaguy/components"
	cfg "github.com/automoto/gigaguy/config"
	"github.com/automoto/gigaguy/shared/gamemath"
	"github.com/automoto/gigaguy/shared/leveldata"
	"github.com/automoto/gigaguy/systems/factory"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

var testGrid = gamemath.Grid{CellWidth: 32, CellHeight: 32}

// newWorld builds a world from text rows with the player standing on the
// '@' cell and a camera.
func newWorld(t *testing.T, rows ...string) (donburi.World, *donburi.Entry) {
	t.Helper()

	lvl, err := leveldata.Parse(strings.NewReader(strings.Join(rows, "\n")), t.Name())
	require.NoError(t, err)
	require.True(t, lvl.HasSpawn, "level needs a spawn marker")

	w := donburi.NewWorld()
	level, err := factory.CreateLevel(w, lvl, testGrid)
	require.NoError(t, err)

	x, y := factory.SpawnPosition(lvl, testGrid, cfg.Player.Width, cfg.Player.StandHeight)
	player := factory.CreatePlayer(w, components.Level.Get(level).Catalog, x, y)
	factory.CreateCamera(w)
	return w, player
}

func keys(held ...cfg.ActionID) [cfg.ActionCount]bool {
	var k [cfg.ActionCount]bool
	for _, id := range held {
		k[id] = true
	}
	return k
}

// step runs frames full frames with the same keys held.
func step(w donburi.World, frames int, held ...cfg.ActionID) {
	for range frames {
		SampleInput(w, keys(held...))
		Step(w, cfg.C.FrameTime())
	}
}

// control runs only the controller for one frame.
func control(w donburi.World, e *donburi.Entry, held ...cfg.ActionID) {
	SampleInput(w, keys(held...))
	actorOf(e).control(cfg.C.FrameTime())
}
