package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreTuning(t *testing.T) {
	saved := CurrentTuning()
	t.Cleanup(func() { require.NoError(t, saved.Apply()) })
}

func TestDefaultTuningIsValid(t *testing.T) {
	assert.NoError(t, CurrentTuning().Validate())
	assert.InDelta(t, 1.0/60, C.FrameTime(), 1e-12)
}

func TestValidateRejectsTunneling(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Tuning)
		want   error
	}{
		{"fall speed reaches a cell", func(t *Tuning) { t.Physics.MaxFallSpeed = 32 }, ErrTunneling},
		{"jump speed reaches a cell", func(t *Tuning) { t.Movement.JumpSpeed = 40 }, ErrTunneling},
		{"run speed reaches a cell", func(t *Tuning) { t.Movement.MaxSpeed = 32 }, ErrTunneling},
		{"duck taller than stand", func(t *Tuning) { t.Player.DuckHeight = 80 }, ErrInvalidTuning},
		{"zero cells", func(t *Tuning) { t.Grid.CellWidth = 0 }, ErrInvalidTuning},
		{"divisor below one", func(t *Tuning) { t.Movement.JumpCutDivisor = 0.5 }, ErrInvalidTuning},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tun := CurrentTuning()
			tt.mutate(&tun)
			assert.ErrorIs(t, tun.Validate(), tt.want)
		})
	}
}

func TestLoadTuningOverlaysFile(t *testing.T) {
	restoreTuning(t)

	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("movement:\n  jumpSpeed: 10\n  maxSpeed: 5\nphysics:\n  gravity: 0.5\n"), 0o644))

	tun, err := LoadTuning(path)
	require.NoError(t, err)

	assert.Equal(t, 10.0, tun.Movement.JumpSpeed)
	assert.Equal(t, 10.0, Movement.JumpSpeed)
	assert.Equal(t, 5.0, Movement.MaxSpeed)
	assert.Equal(t, 0.5, Physics.Gravity)
	assert.Equal(t, 0.75, Movement.Acceleration, "unset keys keep their values")
}

func TestLoadTuningRejectsInvalidFile(t *testing.T) {
	restoreTuning(t)
	before := Physics.MaxFallSpeed

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("physics:\n  maxFallSpeed: 64\n"), 0o644))

	_, err := LoadTuning(path)
	assert.ErrorIs(t, err, ErrTunneling)
	assert.Equal(t, before, Physics.MaxFallSpeed)

	_, err = LoadTuning(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseAction(t *testing.T) {
	for a := ActionMoveLeft; a < ActionCount; a++ {
		got, ok := ParseAction(a.String())
		require.True(t, ok)
		assert.Equal(t, a, got)
	}
	_, ok := ParseAction("attack")
	assert.False(t, ok)
}
