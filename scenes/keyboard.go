package scenes

import (
	cfg "github.com/automoto/gigaguy/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// binding represents the keys and buttons that hold down one action
type binding struct {
	keys    []ebiten.Key
	buttons []ebiten.StandardGamepadButton
}

var bindings = [cfg.ActionCount]binding{
	cfg.ActionMoveLeft: {
		keys:    []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
		buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
	},
	cfg.ActionMoveRight: {
		keys:    []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
		buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
	},
	cfg.ActionDuck: {
		keys:    []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
		buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
	},
	cfg.ActionJump: {
		keys: []ebiten.Key{ebiten.KeyX, ebiten.KeyW, ebiten.KeySpace},
		// A / Cross button
		buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	},
}

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// pollKeys reads which actions are held on the keyboard or any standard
// gamepad this frame.
func pollKeys() [cfg.ActionCount]bool {
	var held [cfg.ActionCount]bool
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for id, b := range bindings {
		for _, key := range b.keys {
			if ebiten.IsKeyPressed(key) {
				held[id] = true
			}
		}
		for _, gp := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gp) {
				continue
			}
			for _, btn := range b.buttons {
				if ebiten.IsStandardGamepadButtonPressed(gp, btn) {
					held[id] = true
				}
			}
		}
	}
	return held
}
