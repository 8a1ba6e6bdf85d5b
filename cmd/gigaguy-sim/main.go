// Command gigaguy-sim plays a scripted input sequence through a level
// without opening a window and prints where the actor ended up.
package main

import (
	"flag"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"path"
	"syscall"

	"github.com/automoto/gigaguy/assets"
	"github.com/automoto/gigaguy/config"
)

func main() {
	level := flag.String("level", "intro.txt", "bundled level name, or a path on disk with -disk")
	disk := flag.Bool("disk", false, "read -level from disk instead of the bundled levels")
	scriptPath := flag.String("script", "", "YAML input script (required)")
	tuning := flag.String("tuning", "", "YAML tuning file applied over the defaults")
	paced := flag.Bool("paced", false, "step at the configured tick rate instead of as fast as possible")
	verbose := flag.Bool("v", false, "log jump and wall state changes")
	flag.Parse()

	if *scriptPath == "" {
		flag.Usage()
		os.Exit(2)
	}
	config.Debug.LogTransitions = *verbose

	if *tuning != "" {
		if _, err := config.LoadTuning(*tuning); err != nil {
			log.Fatal(err)
		}
	}

	script, err := LoadScript(*scriptPath)
	if err != nil {
		log.Fatal(err)
	}

	var fsys fs.FS
	levelPath := *level
	if *disk {
		dir, name := path.Split(levelPath)
		if dir == "" {
			dir = "."
		}
		fsys, levelPath = os.DirFS(dir), name
	} else {
		fsys, levelPath = assets.Levels(), path.Join(assets.LevelDir, levelPath)
	}

	runner, err := NewRunner(fsys, levelPath)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Stopping simulation...")
		runner.Stop()
	}()

	result, err := runner.Run(script, *paced)
	if err != nil {
		log.Fatal(err)
	}
	log.Println(result)
}
