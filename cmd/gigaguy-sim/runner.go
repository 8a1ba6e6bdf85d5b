package main

import (
	"fmt"
	"io/fs"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/automoto/gigaguy/components"
	cfg "github.com/automoto/gigaguy/config"
	"github.com/automoto/gigaguy/shared/gamemath"
	"github.com/automoto/gigaguy/shared/leveldata"
	"github.com/automoto/gigaguy/systems"
	"github.com/automoto/gigaguy/systems/factory"
	"github.com/yohamta/donburi"
)

// Runner steps one level with a scripted actor, without a window.
type Runner struct {
	world  donburi.World
	player *donburi.Entry

	frame    int
	last     components.ContactState
	stopChan chan struct{}
	stopOnce sync.Once
}

// Result is the actor's state after a run.
type Result struct {
	Frames   int
	Body     components.BodyData
	Contact  components.ContactState
	Jump     components.JumpState
	Wall     components.WallState
	Respawns int
}

func (r Result) String() string {
	return fmt.Sprintf("frames=%d pos=(%.2f, %.2f) vel=(%.2f, %.2f) size=%gx%g ground=%t wall=%t slope=%t ceiling=%t jump=%s wallstate=%s respawns=%d",
		r.Frames, r.Body.Position.X, r.Body.Position.Y, r.Body.Velocity.X, r.Body.Velocity.Y,
		r.Body.Width, r.Body.Height,
		r.Contact.OnGround, r.Contact.OnWall, r.Contact.OnSlope, r.Contact.HitCeiling,
		r.Jump, r.Wall, r.Respawns)
}

func NewRunner(fsys fs.FS, levelPath string) (*Runner, error) {
	grid := gamemath.Grid{CellWidth: cfg.Grid.CellWidth, CellHeight: cfg.Grid.CellHeight}
	lvl, err := leveldata.LoadFile(fsys, levelPath, grid)
	if err != nil {
		return nil, err
	}

	w := donburi.NewWorld()
	level, err := factory.CreateLevel(w, lvl, grid)
	if err != nil {
		return nil, err
	}
	x, y := factory.SpawnPosition(lvl, grid, cfg.Player.Width, cfg.Player.StandHeight)
	player := factory.CreatePlayer(w, components.Level.Get(level).Catalog, x, y)
	factory.CreateCamera(w)

	return &Runner{
		world:    w,
		player:   player,
		stopChan: make(chan struct{}),
	}, nil
}

// Run plays script to the end or until Stop. With paced set it waits for a
// ticker between frames; otherwise it steps as fast as it can.
func (r *Runner) Run(script Script, paced bool) (Result, error) {
	held, err := script.Held()
	if err != nil {
		return Result{}, err
	}

	var tick <-chan time.Time
	if paced {
		ticker := time.NewTicker(time.Second / time.Duration(cfg.C.TickRate))
		defer ticker.Stop()
		tick = ticker.C
	}

	log.Printf("Running %d frames at %d ticks/second", script.Frames(), cfg.C.TickRate)
	for i, st := range script {
		for range st.Frames {
			if tick != nil {
				select {
				case <-r.stopChan:
					log.Println("Run stopped")
					return r.result(), nil
				case <-tick:
				}
			} else {
				select {
				case <-r.stopChan:
					log.Println("Run stopped")
					return r.result(), nil
				default:
				}
			}
			r.step(held[i])
		}
	}
	return r.result(), nil
}

func (r *Runner) Stop() {
	r.stopOnce.Do(func() { close(r.stopChan) })
}

func (r *Runner) step(held [cfg.ActionCount]bool) {
	systems.SampleInput(r.world, held)
	systems.Step(r.world, cfg.C.FrameTime())
	r.frame++

	contact := *components.Contact.Get(r.player)
	if changes := contactChanges(r.last, contact); changes != "" {
		log.Printf("frame %d: %s", r.frame, changes)
	}
	r.last = contact
}

func (r *Runner) result() Result {
	move := components.Movement.Get(r.player)
	return Result{
		Frames:   r.frame,
		Body:     *components.Body.Get(r.player),
		Contact:  *components.Contact.Get(r.player),
		Jump:     move.Jump,
		Wall:     move.Wall,
		Respawns: components.Player.Get(r.player).Respawns,
	}
}

// contactChanges lists the contact flags that flipped, e.g. "+ground -wall".
func contactChanges(prev, next components.ContactState) string {
	var parts []string
	flag := func(name string, was, is bool) {
		switch {
		case is && !was:
			parts = append(parts, "+"+name)
		case was && !is:
			parts = append(parts, "-"+name)
		}
	}
	flag("ground", prev.OnGround, next.OnGround)
	flag("wall", prev.OnWall, next.OnWall)
	flag("slope", prev.OnSlope, next.OnSlope)
	flag("ceiling", prev.HitCeiling, next.HitCeiling)
	return strings.Join(parts, " ")
}
