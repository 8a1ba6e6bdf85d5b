package components

import (
	"github.com/automoto/gigaguy/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// BodyData is the actor's kinematic state. Position is the top-left of the
// bounding box; velocity is in world units per frame.
type BodyData struct {
	Position    math.Vec2
	Velocity    math.Vec2
	Width       float64
	Height      float64
	StandHeight float64
	DuckHeight  float64
}

// Rect derives the bounding box.
func (b *BodyData) Rect() gamemath.Rect {
	return gamemath.Rect{X: b.Position.X, Y: b.Position.Y, W: b.Width, H: b.Height}
}

func (b *BodyData) Bottom() float64 { return b.Position.Y + b.Height }

// SetHeight resizes the box from the top so the bottom edge stays planted.
func (b *BodyData) SetHeight(h float64) {
	bottom := b.Position.Y + b.Height
	b.Height = h
	b.Position.Y = bottom - h
}

var Body = donburi.NewComponentType[BodyData]()
