package systems

import "github.com/yohamta/donburi"

// Step advances the world by one fixed frame. Input must already be sampled.
func Step(w donburi.World, dt float64) {
	UpdatePlayer(w, dt)
	UpdatePhysics(w)
	UpdateCollisions(w)
	UpdateObjects(w)
	UpdateCamera(w)
}
