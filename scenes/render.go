package scenes

import (
	"fmt"
	"image/color"

	"github.com/automoto/gigaguy/components"
	cfg "github.com/automoto/gigaguy/config"
	"github.com/automoto/gigaguy/fonts"
	"github.com/automoto/gigaguy/shared/gamemath"
	"github.com/automoto/gigaguy/shared/tile"
	"github.com/automoto/gigaguy/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/colornames"
)

const (
	layerWorld ecs.LayerID = iota
	layerOverlay
)

// slopeStrip is the column width used to fill slope tiles.
const slopeStrip = 2

func cameraOffset(e *ecs.ECS) (float64, float64) {
	entry, ok := components.Camera.First(e.World)
	if !ok {
		return 0, 0
	}
	c := components.Camera.Get(entry)
	return c.Offset.X, c.Offset.Y
}

func drawLevel(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	catalog := components.Level.Get(entry).Catalog
	if catalog == nil {
		return
	}
	camX, camY := cameraOffset(e)
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	grid := catalog.Grid()

	for _, t := range catalog.Tiles() {
		x, y := t.Rect.X+camX, t.Rect.Y+camY

		// Viewport culling
		if x+t.Rect.W < 0 || x > width || y+t.Rect.H < 0 || y > height {
			continue
		}

		if t.Kind == tile.KindSolid {
			vector.FillRect(screen, float32(x), float32(y), float32(t.Rect.W), float32(t.Rect.H), colornames.Slategray, false)
			continue
		}
		drawSlope(screen, t, grid, x, y)
	}
}

func drawSlope(screen *ebiten.Image, t tile.Tile, grid gamemath.Grid, x, y float64) {
	for p := 0.0; p < t.Rect.W; p += slopeStrip {
		h := gamemath.SlopeHeight(t.Slope, p+slopeStrip/2, grid)
		vector.FillRect(screen, float32(x+p), float32(y+t.Rect.H-h), slopeStrip, float32(h), colornames.Lightslategray, false)
	}
}

func drawPlayer(e *ecs.ECS, screen *ebiten.Image) {
	camX, camY := cameraOffset(e)
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		body := components.Body.Get(entry)
		move := components.Movement.Get(entry)
		player := components.Player.Get(entry)

		c := color.Color(colornames.Orange)
		switch {
		case move.Ducking:
			c = colornames.Gold
		case move.Wall == components.WallStuck:
			c = colornames.Tomato
		case move.Wall == components.WallSliding:
			c = colornames.Coral
		}

		x, y := body.Position.X+camX, body.Position.Y+camY
		vector.FillRect(screen, float32(x), float32(y), float32(body.Width), float32(body.Height), c, false)

		// facing marker
		eyeX := x + body.Width/2 + player.Facing*body.Width/4 - 2
		vector.FillRect(screen, float32(eyeX), float32(y+6), 4, 4, cfg.White, false)
	})
}

// drawDebug outlines every resolv object in the level space and prints the
// actor's movement state.
func drawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowOverlay {
		return
	}
	camX, camY := cameraOffset(e)

	if entry, ok := components.Level.First(e.World); ok {
		if catalog := components.Level.Get(entry).Catalog; catalog != nil {
			for _, obj := range catalog.Space().Objects() {
				c := colornames.Cyan
				if obj.HasTags(tags.ResolvSolid) {
					c = colornames.Gray
				} else if obj.HasTags(tags.ResolvPlayer) {
					c = colornames.Blue
				}
				strokeRect(screen, obj.X+camX, obj.Y+camY, obj.W, obj.H, c)
			}
		}
	}

	entry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	body := components.Body.Get(entry)
	move := components.Movement.Get(entry)
	contact := components.Contact.Get(entry)

	lines := []string{
		fmt.Sprintf("pos %.2f, %.2f  vel %.2f, %.2f", body.Position.X, body.Position.Y, body.Velocity.X, body.Velocity.Y),
		fmt.Sprintf("jump %s  wall %s  duck %t", move.Jump, move.Wall, move.Ducking),
		fmt.Sprintf("ground %t  wall %t  slope %t  ceiling %t", contact.OnGround, contact.OnWall, contact.OnSlope, contact.HitCeiling),
	}
	if contact.OnSlope {
		lines = append(lines, "slope type "+contact.SlopeType.String())
	}
	face := fonts.Overlay.Get()
	for i, line := range lines {
		text.Draw(screen, line, face, 12, 24+i*18, cfg.White)
	}
}

func strokeRect(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), 1, c, false)     // Top
	vector.FillRect(screen, float32(x), float32(y+h-1), float32(w), 1, c, false) // Bottom
	vector.FillRect(screen, float32(x), float32(y), 1, float32(h), c, false)     // Left
	vector.FillRect(screen, float32(x+w-1), float32(y), 1, float32(h), c, false) // Right
}
