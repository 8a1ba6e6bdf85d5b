package systems

import (
	"github.com/automoto/gigaguy/components"
	cfg "github.com/automoto/gigaguy/config"
)

// updateWall advances the wall-stick machine from last frame's contact.
//
// Touching a wall in the air (and not mid-jump) sticks the actor: no gravity,
// no fall. After the stick window it slides, first through a short
// zero-gravity grace and then at a capped fall speed. Leaving the wall rearms
// both windows.
func (a actor) updateWall(dt float64) {
	m := a.move
	t := &m.Timers
	c := a.contact
	b := a.body

	if c.OnWall && !c.OnGround && !m.Rising() {
		side := c.WallSide()
		pullingAway := b.Velocity.X*side < 0

		switch {
		case m.Wall == components.WallFree || m.Wall == components.WallReleased || pullingAway:
			t.ResetWall()
			a.setWall(components.WallStuck)
		case m.Wall == components.WallStuck:
			t.Stick -= dt
			if t.Stick <= 0 {
				a.setWall(components.WallSliding)
			}
		case m.Wall == components.WallSliding && t.Slide > 0:
			t.Slide -= dt
		}
		m.WallSide = side

		if m.GravitySuspended() {
			b.Velocity.Y = 0
		}
		// keep the box pressed into the wall so the next pass still sees it
		b.Position.X += side * cfg.Physics.WallNudge
		return
	}

	switch m.Wall {
	case components.WallStuck, components.WallSliding:
		if m.Wall == components.WallStuck {
			b.Position.X -= m.WallSide * cfg.Physics.WallNudge
		}
		t.ResetWall()
		a.setWall(components.WallReleased)
	case components.WallReleased:
		a.setWall(components.WallFree)
	}
}
