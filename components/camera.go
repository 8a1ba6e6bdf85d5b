package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData holds the draw offset added to world coordinates.
type CameraData struct {
	Offset math.Vec2
	Target math.Vec2 // unsmoothed offset for the current frame
	Locked bool      // false until the first frame snaps Offset to Target
}

var Camera = donburi.NewComponentType[CameraData]()
