package tags

import (
	"github.com/automoto/gigaguy/shared/tile"
	"github.com/yohamta/donburi"
)

var (
	Player = donburi.NewTag().SetName("Player")
	Level  = donburi.NewTag().SetName("Level")
	Camera = donburi.NewTag().SetName("Camera")
)

// Resolv tags for shape queries
const (
	ResolvSolid  = tile.TagSolid
	ResolvSlope  = tile.TagSlope
	ResolvPlayer = "Player"
)
