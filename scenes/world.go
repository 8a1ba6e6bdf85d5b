package scenes

import (
	"image/color"
	"io/fs"
	"log"
	"path"
	"path/filepath"
	"sync"

	"github.com/automoto/gigaguy/components"
	cfg "github.com/automoto/gigaguy/config"
	"github.com/automoto/gigaguy/shared/gamemath"
	"github.com/automoto/gigaguy/shared/leveldata"
	"github.com/automoto/gigaguy/systems"
	"github.com/automoto/gigaguy/systems/factory"
	"github.com/automoto/gigaguy/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const respawnFadeSeconds = 0.4

// WorldScene runs one level with a single actor. When built with a watch
// directory it reloads the level whenever the file changes on disk.
type WorldScene struct {
	ecs       *ecs.ECS
	fsys      fs.FS
	levelPath string
	watchDir  string
	watcher   *leveldata.Watcher
	once      sync.Once
	err       error

	respawns int
	fade     *gween.Tween
	fadeA    float32
}

// NewWorldScene loads levelPath from fsys on first update. watchDir, when not
// empty, is a directory on disk to watch for level edits.
func NewWorldScene(fsys fs.FS, levelPath, watchDir string) *WorldScene {
	return &WorldScene{fsys: fsys, levelPath: levelPath, watchDir: watchDir}
}

func (ws *WorldScene) Update() error {
	ws.once.Do(ws.configure)
	if ws.err != nil {
		return ws.err
	}

	ws.pollReload()
	ws.ecs.Update()
	ws.updateFade()
	return nil
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Background)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)

	if ws.fadeA > 0 {
		w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
		vector.FillRect(screen, 0, 0, float32(w), float32(h), color.NRGBA{A: uint8(ws.fadeA * 255)}, false)
	}
}

// Close stops the level watcher.
func (ws *WorldScene) Close() error {
	if ws.watcher == nil {
		return nil
	}
	return ws.watcher.Close()
}

func (ws *WorldScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(func(e *ecs.ECS) {
		systems.SampleInput(e.World, pollKeys())
		systems.Step(e.World, cfg.C.FrameTime())
	})

	e.AddRenderer(layerWorld, drawLevel)
	e.AddRenderer(layerWorld, drawPlayer)
	e.AddRenderer(layerOverlay, drawDebug)

	ws.ecs = e

	if err := ws.load(); err != nil {
		ws.err = err
		return
	}

	if ws.watchDir == "" {
		return
	}
	watcher, err := leveldata.NewWatcher(ws.watchDir)
	if err != nil {
		log.Printf("Warning: Could not watch %s: %v", ws.watchDir, err)
		return
	}
	ws.watcher = watcher
}

// load builds the level, camera and actor from the level file.
func (ws *WorldScene) load() error {
	grid := gamemath.Grid{CellWidth: cfg.Grid.CellWidth, CellHeight: cfg.Grid.CellHeight}
	lvl, err := leveldata.LoadFile(ws.fsys, ws.levelPath, grid)
	if err != nil {
		return err
	}

	level, err := factory.CreateLevel(ws.ecs.World, lvl, grid)
	if err != nil {
		return err
	}
	catalog := components.Level.Get(level).Catalog

	x, y := factory.SpawnPosition(lvl, grid, cfg.Player.Width, cfg.Player.StandHeight)
	factory.CreatePlayer(ws.ecs.World, catalog, x, y)
	factory.CreateCamera(ws.ecs.World)
	return nil
}

// pollReload swaps in a fresh world when the watched level file changed.
// A level that fails to load keeps the current world running.
func (ws *WorldScene) pollReload() {
	if ws.watcher == nil {
		return
	}

	for {
		select {
		case name, ok := <-ws.watcher.Events:
			if !ok {
				ws.watcher = nil
				return
			}
			if filepath.Base(name) != path.Base(ws.levelPath) {
				continue
			}
			ws.reload()
		case err, ok := <-ws.watcher.Errors:
			if !ok {
				ws.watcher = nil
				return
			}
			log.Printf("Warning: level watcher: %v", err)
		default:
			return
		}
	}
}

func (ws *WorldScene) reload() {
	prev := ws.ecs.World
	ws.ecs.World = donburi.NewWorld()
	if err := ws.load(); err != nil {
		log.Printf("Warning: Could not reload %s: %v", ws.levelPath, err)
		ws.ecs.World = prev
		return
	}
	ws.respawns = 0
	log.Printf("Reloaded level %s", ws.levelPath)
}

// updateFade starts a short fade from black each time the actor respawns.
func (ws *WorldScene) updateFade() {
	if entry, ok := tags.Player.First(ws.ecs.World); ok {
		if n := components.Player.Get(entry).Respawns; n != ws.respawns {
			ws.respawns = n
			ws.fade = gween.New(1, 0, respawnFadeSeconds, ease.OutQuad)
		}
	}

	if ws.fade == nil {
		return
	}
	a, done := ws.fade.Update(float32(cfg.C.FrameTime()))
	ws.fadeA = a
	if done {
		ws.fade = nil
		ws.fadeA = 0
	}
}
