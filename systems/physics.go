package systems

import (
	"math"

	"github.com/automoto/gigaguy/components"
	cfg "github.com/automoto/gigaguy/config"
	"github.com/automoto/gigaguy/shared/gamemath"
	"github.com/automoto/gigaguy/tags"
	"github.com/yohamta/donburi"
)

func UpdatePhysics(w donburi.World) {
	grid := levelGrid(w)
	tags.Player.Each(w, func(e *donburi.Entry) {
		actorOf(e).integrate(grid)
	})
}

// integrate applies gravity, caps speed and moves the box by one frame of
// velocity. Displacement never exceeds one cell less a unit on either axis,
// so a single probe pass can always find what the box entered.
func (a actor) integrate(grid gamemath.Grid) {
	b := a.body
	m := a.move
	v := &b.Velocity

	if !m.GravitySuspended() {
		v.Y += cfg.Physics.Gravity
	}

	maxFall := cfg.Physics.MaxFallSpeed
	if m.Wall == components.WallSliding {
		maxFall /= cfg.Physics.WallSlideDivisor
	}
	if v.Y > maxFall {
		v.Y = maxFall
	}
	v.X = gamemath.ClampSpeed(v.X, math.Max(cfg.Movement.MaxSpeed, cfg.Movement.JumpSpeed))

	dx, dy := v.X, v.Y
	// ride the slope instead of stepping off it
	if a.contact.OnSlope && !m.Rising() {
		dy += gamemath.SlopeRideOffset(a.contact.SlopeType, dx, grid)
	}

	b.Position.X += gamemath.ClampSpeed(dx, grid.CellWidth-1)
	b.Position.Y += gamemath.ClampSpeed(dy, grid.CellHeight-1)
}

// levelGrid returns the loaded level's grid, or the configured one before a
// level exists.
func levelGrid(w donburi.World) gamemath.Grid {
	if catalog, ok := levelCatalog(w); ok {
		return catalog.Grid()
	}
	return gamemath.Grid{CellWidth: cfg.Grid.CellWidth, CellHeight: cfg.Grid.CellHeight}
}
