package components

import (
	"github.com/automoto/gigaguy/shared/gamemath"
	"github.com/yohamta/donburi"
)

// ContactState is what one collision pass found. Every field starts false
// each pass; the controller reads the previous pass's value.
type ContactState struct {
	OnGround    bool
	OnWall      bool
	OnRightWall bool
	OnSlope     bool
	SlopeType   gamemath.SlopeType
	HitCeiling  bool
}

// WallSide is +1 for a wall on the right, -1 on the left and 0 without a wall.
func (c ContactState) WallSide() float64 {
	switch {
	case !c.OnWall:
		return 0
	case c.OnRightWall:
		return 1
	default:
		return -1
	}
}

var Contact = donburi.NewComponentType[ContactState]()
