package systems

import (
	"testing"

	"github.com/automoto/gigaguy/components"
	cfg "github.com/automoto/gigaguy/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func airborne(t *testing.T) (*components.MovementData, *components.BodyData, func(onGround bool, held ...cfg.ActionID)) {
	t.Helper()
	w, player := newWorld(t, flatLevel...)
	move := components.Movement.Get(player)
	contact := components.Contact.Get(player)
	body := components.Body.Get(player)
	move.Jump = components.JumpFalling

	frame := func(onGround bool, held ...cfg.ActionID) {
		contact.OnGround = onGround
		control(w, player, held...)
	}
	return move, body, frame
}

func TestJumpBuffer(t *testing.T) {
	tests := []struct {
		name        string
		framesEarly int
		wantJump    bool
	}{
		{"pressed on landing", 0, true},
		{"pressed one frame early", 1, true},
		{"pressed two frames early", 2, true},
		{"pressed long before landing", 6, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			move, body, frame := airborne(t)

			for range tt.framesEarly {
				frame(false, cfg.ActionJump)
			}
			frame(true, cfg.ActionJump)

			if tt.wantJump {
				assert.Equal(t, components.JumpRising, move.Jump)
				assert.Equal(t, -cfg.Movement.JumpSpeed, body.Velocity.Y)
				assert.Zero(t, move.Timers.Buffer)
			} else {
				assert.Equal(t, components.JumpGrounded, move.Jump)
			}
		})
	}
}

func TestCoyoteJump(t *testing.T) {
	tests := []struct {
		name      string
		framesOff int
		wantJump  bool
	}{
		{"one frame after the ledge", 1, true},
		{"two frames after the ledge", 2, true},
		{"well past the ledge", 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			move, body, frame := airborne(t)
			move.Jump = components.JumpGrounded
			frame(true)

			for range tt.framesOff - 1 {
				frame(false)
			}
			frame(false, cfg.ActionJump)

			if tt.wantJump {
				assert.Equal(t, components.JumpRising, move.Jump)
				assert.Equal(t, -cfg.Movement.JumpSpeed, body.Velocity.Y)
			} else {
				assert.Equal(t, components.JumpFalling, move.Jump)
				assert.GreaterOrEqual(t, body.Velocity.Y, 0.0)
			}
		})
	}
}

func TestJumpReleaseCutsThrust(t *testing.T) {
	w, player := newWorld(t, flatLevel...)
	step(w, 2)
	step(w, 3, cfg.ActionJump)

	body := components.Body.Get(player)
	move := components.Movement.Get(player)
	require.Equal(t, components.JumpRising, move.Jump)
	before := body.Velocity.Y
	require.Less(t, before, 0.0)

	step(w, 1)
	assert.Equal(t, components.JumpFalling, move.Jump)
	assert.InDelta(t, before/cfg.Movement.JumpCutDivisor+cfg.Physics.Gravity, body.Velocity.Y, 1e-9)
}

func TestHeldJumpTapersAndEnds(t *testing.T) {
	w, player := newWorld(t, flatLevel...)
	step(w, 2)

	body := components.Body.Get(player)
	move := components.Movement.Get(player)

	step(w, 1, cfg.ActionJump)
	start := body.Bottom()

	var sawHalfThrust bool
	for frame := 0; frame < 30 && move.Rising(); frame++ {
		step(w, 1, cfg.ActionJump)
		if move.Rising() && body.Velocity.Y == -cfg.Movement.JumpSpeed/2+cfg.Physics.Gravity {
			sawHalfThrust = true
		}
	}
	assert.True(t, sawHalfThrust)
	assert.Equal(t, components.JumpFalling, move.Jump)
	assert.Less(t, body.Bottom(), start)
}

func TestDuckUnderLowCeiling(t *testing.T) {
	w, player := newWorld(t,
		"            ",
		"      1111  ",
		" @          ",
		"111111111111",
	)
	step(w, 2)

	body := components.Body.Get(player)
	move := components.Movement.Get(player)
	require.Equal(t, 96.0, body.Bottom())

	step(w, 1, cfg.ActionDuck)
	require.True(t, move.Ducking)
	assert.Equal(t, cfg.Player.DuckHeight, body.Height)
	assert.Equal(t, 96.0, body.Bottom())

	// under the ceiling, releasing duck keeps the actor ducked
	body.Position.X = 224
	step(w, 5)
	assert.True(t, move.Ducking)
	assert.Equal(t, cfg.Player.DuckHeight, body.Height)
	assert.False(t, components.Contact.Get(player).HitCeiling)

	// clear of it, the actor stands back up in place
	body.Position.X = 32
	step(w, 1)
	assert.False(t, move.Ducking)
	assert.Equal(t, cfg.Player.StandHeight, body.Height)
	assert.Equal(t, 96.0, body.Bottom())
}

func TestDuckSlowsRunning(t *testing.T) {
	w, player := newWorld(t, flatLevel...)
	step(w, 2)
	step(w, 30, cfg.ActionMoveRight, cfg.ActionDuck)

	body := components.Body.Get(player)
	assert.True(t, components.Movement.Get(player).Ducking)
	assert.Greater(t, body.Velocity.X, 0.0)
	assert.Less(t, body.Velocity.X, cfg.Movement.MaxSpeed/cfg.Movement.DuckSpeedDivisor)
}

func TestDuckNeedsGround(t *testing.T) {
	move, body, frame := airborne(t)
	frame(false, cfg.ActionDuck)
	assert.False(t, move.Ducking)
	assert.Equal(t, cfg.Player.StandHeight, body.Height)
}
