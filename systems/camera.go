package systems

import (
	"github.com/automoto/gigaguy/components"
	"github.com/automoto/gigaguy/config"
	"github.com/automoto/gigaguy/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraOffset returns the translation that centers body on a screen of the
// given size. A ducking body keeps the standing offset: its top drops by the
// height it lost, which cancels the half-height term.
func CameraOffset(body *components.BodyData, ducking bool, screenW, screenH float64) math.Vec2 {
	x := screenW/2 - body.Width/2 - body.Position.X
	y := screenH/2 - body.Height/2 - body.Position.Y
	if ducking {
		y = screenH/2 - body.Position.Y
	}
	return math.Vec2{X: x, Y: y}
}

func UpdateCamera(w donburi.World) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	body := components.Body.Get(playerEntry)
	move := components.Movement.Get(playerEntry)

	camera.Target = CameraOffset(body, move.Ducking, float64(config.C.Width), float64(config.C.Height))
	if !camera.Locked {
		camera.Offset = camera.Target
		camera.Locked = true
		return
	}

	// Smooth follow
	camera.Offset.X += (camera.Target.X - camera.Offset.X) * config.Camera.FollowSmoothing
	camera.Offset.Y += (camera.Target.Y - camera.Offset.Y) * config.Camera.FollowSmoothing
}
