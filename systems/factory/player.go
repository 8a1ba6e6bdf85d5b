package factory

import (
	"github.com/automoto/gigaguy/archetypes"
	"github.com/automoto/gigaguy/components"
	cfg "github.com/automoto/gigaguy/config"
	"github.com/automoto/gigaguy/shared/tile"
	"github.com/automoto/gigaguy/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreatePlayer spawns a standing actor with its top-left at (x, y). Its
// resolv object joins the catalog's space so headroom checks can query the
// tiles around it.
func CreatePlayer(w donburi.World, catalog *tile.Catalog, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	width, height := cfg.Player.Width, cfg.Player.StandHeight
	obj := resolv.NewObject(x, y, width, height, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, width, height))
	obj.Data = player
	if catalog != nil {
		catalog.Space().Add(obj)
	}
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Body.SetValue(player, components.BodyData{
		Position:    math.Vec2{X: x, Y: y},
		Width:       width,
		Height:      height,
		StandHeight: height,
		DuckHeight:  cfg.Player.DuckHeight,
	})
	components.Movement.SetValue(player, components.MovementData{
		Timers: components.DefaultMovementTimers(),
	})
	components.Player.SetValue(player, components.PlayerData{
		Facing: 1,
		Spawn:  math.Vec2{X: x, Y: y},
	})

	return player
}
