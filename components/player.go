package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type PlayerData struct {
	Facing float64   // -1 or 1, last horizontal input
	Spawn  math.Vec2 // top-left of the standing box at the spawn cell

	Respawns int
}

var Player = donburi.NewComponentType[PlayerData]()
