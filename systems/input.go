package systems

import (
	"github.com/automoto/gigaguy/components"
	cfg "github.com/automoto/gigaguy/config"
	"github.com/yohamta/donburi"
)

// SampleInput hands this frame's held-key set to every actor. It must run
// before Step; the previous set moves into InputData.Previous.
func SampleInput(w donburi.World, held [cfg.ActionCount]bool) {
	components.Input.Each(w, func(entry *donburi.Entry) {
		components.Input.Get(entry).Push(held)
	})
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	return input.Action(id)
}
