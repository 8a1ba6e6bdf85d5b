package systems

import (
	"log"
	"math"

	"github.com/automoto/gigaguy/components"
	"github.com/automoto/gigaguy/shared/gamemath"
	"github.com/automoto/gigaguy/shared/tile"
	"github.com/automoto/gigaguy/tags"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

func UpdateCollisions(w donburi.World) {
	catalog, ok := levelCatalog(w)
	if !ok {
		return
	}

	tags.Player.Each(w, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		components.Contact.SetValue(e, Resolve(body, catalog))

		// Fell out of the level: put the actor back on its spawn cell
		if body.Position.Y > catalog.Bounds().Bottom()+body.Height {
			respawn(actorOf(e))
		}
	})
}

func levelCatalog(w donburi.World) (*tile.Catalog, bool) {
	entry, ok := components.Level.First(w)
	if !ok {
		return nil, false
	}
	level := components.Level.Get(entry)
	return level.Catalog, level.Catalog != nil
}

func respawn(a actor) {
	log.Printf("Actor left the level at (%.1f, %.1f), respawning", a.body.Position.X, a.body.Position.Y)
	a.body.SetHeight(a.body.StandHeight)
	a.body.Position = a.player.Spawn
	a.body.Velocity.X, a.body.Velocity.Y = 0, 0
	*a.move = components.MovementData{Timers: components.DefaultMovementTimers()}
	*a.contact = components.ContactState{}
	a.player.Respawns++
}

// Resolve pushes body out of every tile it overlaps and reports the contacts
// found. It runs three passes in a fixed order: slope surfaces under the box
// center, then the left and right faces, then the top and bottom faces. Each
// pass reads the box as the previous one left it.
func Resolve(body *components.BodyData, catalog *tile.Catalog) components.ContactState {
	r := resolver{body: body, catalog: catalog, grid: catalog.Grid()}
	r.slopes()
	r.sides()
	r.ends()
	return r.contact
}

type resolver struct {
	body    *components.BodyData
	catalog *tile.Catalog
	grid    gamemath.Grid
	contact components.ContactState
}

// hit returns the tile of kind under pt if it still overlaps the box.
func (r *resolver) hit(pt dmath.Vec2, kind tile.Kind) (tile.Tile, bool) {
	t, ok := r.catalog.Lookup(pt.X, pt.Y)
	if !ok || t.Kind != kind || !t.Rect.Intersects(r.body.Rect()) {
		return tile.Tile{}, false
	}
	return t, true
}

// slopes lifts the box onto the highest slope surface its center line has
// sunk below. A rising box passes through slopes from underneath.
func (r *resolver) slopes() {
	b := r.body
	if b.Velocity.Y < 0 {
		return
	}

	rect := b.Rect()
	var best tile.Tile
	surface := math.Inf(1)
	for _, pt := range probePoints(rect, r.grid, gamemath.AxisY, 1, true) {
		t, ok := r.hit(pt, tile.KindSlope)
		if !ok {
			continue
		}
		if y := gamemath.SlopeSurfaceY(t.Slope, t.Rect, rect.CenterX(), r.grid); y < surface {
			best, surface = t, y
		}
	}
	if math.IsInf(surface, 1) || rect.Bottom() <= surface {
		return
	}

	b.Position.Y = surface - b.Height
	b.Velocity.Y = 0
	r.contact.OnGround = true
	r.contact.OnSlope = true
	r.contact.SlopeType = best.Slope
}

// sides pushes the box out of walls through its left and right faces.
func (r *resolver) sides() {
	b := r.body
	for _, sign := range [2]float64{-1, 1} {
		for _, pt := range probePoints(b.Rect(), r.grid, gamemath.AxisX, sign, false) {
			t, ok := r.hit(pt, tile.KindSolid)
			if !ok || !r.isWall(t, sign) {
				continue
			}
			if sign > 0 {
				b.Position.X = t.Rect.Left() - b.Width
			} else {
				b.Position.X = t.Rect.Right()
			}
			b.Velocity.X = 0
			r.contact.OnWall = true
			r.contact.OnRightWall = sign > 0
		}
	}
}

// isWall decides whether a solid tile touched by a side probe blocks
// horizontally. The tile must stick out past the probed face, its face toward
// the box must not be buried against another tile, and the box must overlap
// it less sideways than vertically. Anything else is a floor or ceiling and
// belongs to the end pass.
func (r *resolver) isWall(t tile.Tile, sign float64) bool {
	rect := r.body.Rect()
	if sign > 0 && t.Rect.Right() <= rect.Right() {
		return false
	}
	if sign < 0 && t.Rect.Left() >= rect.Left() {
		return false
	}

	cell := r.grid.CellAt(t.Rect.X, t.Rect.Y)
	if r.catalog.Occupied(gamemath.Cell{Col: cell.Col - int(sign), Row: cell.Row}) {
		return false
	}

	var sideways float64
	if sign > 0 {
		sideways = rect.Right() - t.Rect.Left()
	} else {
		sideways = t.Rect.Right() - rect.Left()
	}
	vertical := math.Min(rect.Bottom(), t.Rect.Bottom()) - math.Max(rect.Top(), t.Rect.Top())
	return sideways <= vertical
}

// ends pushes the box out through its top or bottom face. A tile whose top
// lies below the box's top is landed on; anything else is a ceiling.
func (r *resolver) ends() {
	b := r.body
	for _, sign := range [2]float64{-1, 1} {
		// a slope already holds the box; the fill below must not snap it
		if sign > 0 && r.contact.OnSlope {
			continue
		}
		for _, pt := range probePoints(b.Rect(), r.grid, gamemath.AxisY, sign, false) {
			t, ok := r.hit(pt, tile.KindSolid)
			if !ok {
				continue
			}
			if b.Position.Y < t.Rect.Top() {
				b.Position.Y = t.Rect.Top() - b.Height
				r.contact.OnGround = true
			} else {
				b.Position.Y = t.Rect.Bottom()
				r.contact.HitCeiling = true
			}
			b.Velocity.Y = 0
		}
	}
}
