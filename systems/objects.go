package systems

import (
	"github.com/automoto/gigaguy/components"
	"github.com/yohamta/donburi"
)

// UpdateObjects copies each resolved body into its resolv object so shape
// queries next frame see where the actor ended up.
func UpdateObjects(w donburi.World) {
	components.Object.Each(w, func(e *donburi.Entry) {
		if !e.HasComponent(components.Body) {
			return
		}
		components.Object.Get(e).SyncTo(components.Body.Get(e).Rect())
	})
}
