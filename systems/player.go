package systems

import (
	"log"

	"github.com/automoto/gigaguy/components"
	cfg "github.com/automoto/gigaguy/config"
	"github.com/automoto/gigaguy/shared/gamemath"
	"github.com/automoto/gigaguy/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// actor bundles one player's components for the per-frame pipeline.
type actor struct {
	input   *components.InputData
	body    *components.BodyData
	move    *components.MovementData
	contact *components.ContactState
	player  *components.PlayerData
	object  *resolv.Object
}

func actorOf(e *donburi.Entry) actor {
	a := actor{
		input:   components.Input.Get(e),
		body:    components.Body.Get(e),
		move:    components.Movement.Get(e),
		contact: components.Contact.Get(e),
		player:  components.Player.Get(e),
	}
	if e.HasComponent(components.Object) {
		a.object = components.Object.Get(e).Object
	}
	return a
}

// UpdatePlayer runs the movement controller: timers, run, duck, jump, then
// the wall machine. Jump is processed before the wall machine so a wall jump
// clears wall contact before the machine can stick to it again.
func UpdatePlayer(w donburi.World, dt float64) {
	tags.Player.Each(w, func(e *donburi.Entry) {
		actorOf(e).control(dt)
	})
}

func (a actor) control(dt float64) {
	a.advanceTimers(dt)
	a.trackContact()
	a.run()
	a.duck()
	a.jump(dt)
	a.updateWall(dt)
}

func (a actor) advanceTimers(dt float64) {
	t := &a.move.Timers
	if a.contact.OnGround {
		t.GroundGrace = cfg.Movement.GroundGraceWindow
	} else if t.GroundGrace > 0 {
		t.GroundGrace -= dt
	}
	if t.Buffer > 0 {
		t.Buffer -= dt
	}
}

// trackContact folds last frame's contact into the jump state.
func (a actor) trackContact() {
	m := a.move
	switch {
	case a.contact.HitCeiling && m.Rising():
		m.Timers.Jump = 0
		a.setJump(components.JumpFalling)
	case a.contact.OnGround && !m.Rising():
		a.setJump(components.JumpGrounded)
	case !a.contact.OnGround && m.Jump == components.JumpGrounded:
		a.setJump(components.JumpFalling)
	}
}

func (a actor) run() {
	left := GetAction(a.input, cfg.ActionMoveLeft).Pressed
	right := GetAction(a.input, cfg.ActionMoveRight).Pressed
	v := &a.body.Velocity

	var target float64
	switch {
	case left && !right:
		target = -cfg.Movement.MaxSpeed
		a.player.Facing = -1
	case right && !left:
		target = cfg.Movement.MaxSpeed
		a.player.Facing = 1
	default:
		v.X = gamemath.ApplyFriction(v.X, cfg.Movement.Deceleration)
		return
	}
	v.X = gamemath.Approach(v.X, target, cfg.Movement.Acceleration, cfg.Movement.Deceleration)
}

func (a actor) duck() {
	held := GetAction(a.input, cfg.ActionDuck).Pressed
	m := a.move

	switch {
	case held && !m.Ducking && a.contact.OnGround:
		a.body.SetHeight(a.body.DuckHeight)
		m.Ducking = true
	case !held && m.Ducking && a.canStand():
		a.body.SetHeight(a.body.StandHeight)
		m.Ducking = false
	}

	if m.Ducking {
		a.body.Velocity.X /= cfg.Movement.DuckSpeedDivisor
	}
}

// canStand reports whether the strip above the ducked box is free of solid
// tiles. The resolv space narrows candidates by cell; the rectangle test
// decides.
func (a actor) canStand() bool {
	diff := a.body.StandHeight - a.body.Height
	if diff <= 0 || a.object == nil {
		return true
	}

	b := a.body
	head := gamemath.Rect{X: b.Position.X, Y: b.Position.Y - diff, W: b.Width, H: diff}
	standing := gamemath.Rect{X: b.Position.X, Y: b.Position.Y - diff, W: b.Width, H: b.StandHeight}

	obj := components.ObjectData{Object: a.object}
	obj.SyncTo(standing)
	defer obj.SyncTo(b.Rect())

	check := a.object.Check(0, 0, tags.ResolvSolid)
	if check == nil {
		return true
	}
	for _, o := range check.Objects {
		if head.Intersects(gamemath.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}) {
			return false
		}
	}
	return true
}

func (a actor) jump(dt float64) {
	act := GetAction(a.input, cfg.ActionJump)
	m := a.move
	t := &m.Timers
	v := &a.body.Velocity

	if act.JustPressed {
		t.Buffer = cfg.Movement.BufferWindow
	}

	switch {
	case t.Buffer > 0 && (a.contact.OnGround || t.GroundGrace > 0) && !m.Rising():
		v.Y = -cfg.Movement.JumpSpeed
		t.Jump = cfg.Movement.JumpWindow
		t.Buffer = 0
		t.GroundGrace = 0
		a.setJump(components.JumpRising)

	case act.JustPressed && a.contact.OnWall && !a.contact.OnGround:
		side := a.contact.WallSide()
		v.X = -side * cfg.Movement.JumpSpeed
		v.Y = -cfg.Movement.JumpSpeed
		t.Jump = cfg.Movement.JumpWindow
		t.Buffer = 0
		t.ResetWall()
		a.setWall(components.WallFree)
		a.contact.OnWall = false
		a.contact.OnRightWall = false
		a.player.Facing = -side
		a.setJump(components.JumpRising)

	case m.Rising():
		if act.JustReleased || t.Jump <= 0 {
			t.Jump = 0
			v.Y /= cfg.Movement.JumpCutDivisor
			a.setJump(components.JumpFalling)
			return
		}
		t.Jump -= dt
		if act.Pressed {
			thrust := cfg.Movement.JumpSpeed
			if t.Jump < cfg.Movement.JumpTaperThreshold {
				thrust /= 2
			}
			v.Y = -thrust
		}
	}
}

func (a actor) setJump(s components.JumpState) {
	if a.move.Jump == s {
		return
	}
	if cfg.Debug.LogTransitions {
		log.Printf("jump: %s -> %s", a.move.Jump, s)
	}
	a.move.Jump = s
}

func (a actor) setWall(s components.WallState) {
	if a.move.Wall == s {
		return
	}
	if cfg.Debug.LogTransitions {
		log.Printf("wall: %s -> %s", a.move.Wall, s)
	}
	a.move.Wall = s
}
