package main

import (
	"flag"
	"image"
	"log"
	"os"
	"path"

	"github.com/automoto/gigaguy/assets"
	"github.com/automoto/gigaguy/config"
	"github.com/automoto/gigaguy/fonts"
	"github.com/automoto/gigaguy/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(scene Scene) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scene,
	}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	level := flag.String("level", "intro.txt", "level file; bundled name or a path on disk with -watch")
	tuning := flag.String("tuning", "", "YAML tuning file applied over the defaults")
	saveTuning := flag.Bool("save-tuning", false, "remember the active tuning for the next run")
	debug := flag.Bool("debug", false, "draw contact flags and log state transitions")
	watch := flag.Bool("watch", false, "load the level from disk and reload it when it changes")
	flag.Parse()

	config.Debug.ShowOverlay = *debug
	config.Debug.LogTransitions = *debug

	// Initialize persistence and load saved tuning
	if err := config.InitPersistence("gigaguy"); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := config.LoadSavedTuning(); err == nil && saved != nil {
		if err := saved.Apply(); err != nil {
			log.Printf("Warning: Ignoring saved tuning: %v", err)
		}
	}
	if *tuning != "" {
		if _, err := config.LoadTuning(*tuning); err != nil {
			log.Fatal(err)
		}
	}
	if *saveTuning {
		if err := config.SaveTuning(config.CurrentTuning()); err != nil {
			log.Printf("Warning: Could not save tuning: %v", err)
		}
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	var scene *scenes.WorldScene
	if *watch {
		dir, name := path.Split(*level)
		if dir == "" {
			dir = "."
		}
		scene = scenes.NewWorldScene(os.DirFS(dir), name, dir)
	} else {
		scene = scenes.NewWorldScene(assets.Levels(), path.Join(assets.LevelDir, *level), "")
	}
	defer func() {
		if err := scene.Close(); err != nil {
			log.Printf("Warning: Could not stop level watcher: %v", err)
		}
	}()

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("gigaguy")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(NewGame(scene)); err != nil {
		log.Fatal(err)
	}
}
