package components

import (
	cfg "github.com/automoto/gigaguy/config"
	"github.com/yohamta/donburi"
)

// JumpState tracks the vertical phase of movement.
type JumpState int

const (
	JumpGrounded JumpState = iota
	JumpRising
	JumpFalling
)

func (s JumpState) String() string {
	switch s {
	case JumpRising:
		return "rising"
	case JumpFalling:
		return "falling"
	default:
		return "grounded"
	}
}

// WallState tracks the wall-stick machine.
type WallState int

const (
	WallFree WallState = iota
	WallStuck
	WallSliding
	WallReleased
)

func (s WallState) String() string {
	switch s {
	case WallStuck:
		return "stuck"
	case WallSliding:
		return "sliding"
	case WallReleased:
		return "released"
	default:
		return "free"
	}
}

// MovementTimers holds every countdown the controller uses, in seconds.
// A timer is active while positive.
type MovementTimers struct {
	Jump        float64 // thrust window of the current jump
	Stick       float64 // time left hanging on a wall before sliding
	Slide       float64 // zero-gravity grace between stuck and sliding
	GroundGrace float64 // coyote time after leaving the ground
	Buffer      float64 // remembered jump press before landing
}

// DefaultMovementTimers returns timers with the wall windows armed and the
// rest idle.
func DefaultMovementTimers() MovementTimers {
	return MovementTimers{
		Stick: cfg.Movement.StickWindow,
		Slide: cfg.Movement.SlideWindow,
	}
}

// ResetWall rearms the stick and slide windows.
func (t *MovementTimers) ResetWall() {
	t.Stick = cfg.Movement.StickWindow
	t.Slide = cfg.Movement.SlideWindow
}

type MovementData struct {
	Jump     JumpState
	Wall     WallState
	WallSide float64 // +1 right, -1 left; last wall touched
	Ducking  bool
	Timers   MovementTimers
}

// Rising reports whether a jump is in progress.
func (m *MovementData) Rising() bool { return m.Jump == JumpRising }

// GravitySuspended reports whether the wall machine is holding the actor in place.
func (m *MovementData) GravitySuspended() bool {
	return m.Wall == WallStuck || (m.Wall == WallSliding && m.Timers.Slide > 0)
}

var Movement = donburi.NewComponentType[MovementData]()
