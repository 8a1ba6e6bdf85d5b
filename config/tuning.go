package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	ErrTunneling     = errors.New("per-frame step reaches a full cell")
	ErrInvalidTuning = errors.New("invalid tuning")
)

// Tuning groups every value a tuning file may override.
type Tuning struct {
	Grid     GridConfig     `yaml:"grid" json:"grid"`
	Player   PlayerConfig   `yaml:"player" json:"player"`
	Physics  PhysicsConfig  `yaml:"physics" json:"physics"`
	Movement MovementConfig `yaml:"movement" json:"movement"`
}

// CurrentTuning snapshots the active global configuration.
func CurrentTuning() Tuning {
	return Tuning{
		Grid:     Grid,
		Player:   Player,
		Physics:  Physics,
		Movement: Movement,
	}
}

// Apply validates t and installs it as the global configuration.
func (t Tuning) Apply() error {
	if err := t.Validate(); err != nil {
		return err
	}
	Grid = t.Grid
	Player = t.Player
	Physics = t.Physics
	Movement = t.Movement
	return nil
}

// Validate rejects tuning the simulation cannot step safely. Any per-frame
// speed must stay below one cell or probes can skip a tile entirely.
func (t Tuning) Validate() error {
	if t.Grid.CellWidth <= 0 || t.Grid.CellHeight <= 0 {
		return fmt.Errorf("cell size %vx%v: %w", t.Grid.CellWidth, t.Grid.CellHeight, ErrInvalidTuning)
	}
	if t.Player.Width <= 0 || t.Player.DuckHeight <= 0 || t.Player.DuckHeight > t.Player.StandHeight {
		return fmt.Errorf("player box %vx%v (duck %v): %w",
			t.Player.Width, t.Player.StandHeight, t.Player.DuckHeight, ErrInvalidTuning)
	}
	if t.Movement.DuckSpeedDivisor < 1 || t.Movement.JumpCutDivisor < 1 || t.Physics.WallSlideDivisor < 1 {
		return fmt.Errorf("divisors must be at least 1: %w", ErrInvalidTuning)
	}
	if t.Physics.MaxFallSpeed >= t.Grid.CellHeight {
		return fmt.Errorf("max fall speed %v on %v cells: %w", t.Physics.MaxFallSpeed, t.Grid.CellHeight, ErrTunneling)
	}
	if t.Movement.JumpSpeed >= t.Grid.CellHeight || t.Movement.JumpSpeed >= t.Grid.CellWidth {
		return fmt.Errorf("jump speed %v on %vx%v cells: %w",
			t.Movement.JumpSpeed, t.Grid.CellWidth, t.Grid.CellHeight, ErrTunneling)
	}
	if t.Movement.MaxSpeed >= t.Grid.CellWidth {
		return fmt.Errorf("max speed %v on %v cells: %w", t.Movement.MaxSpeed, t.Grid.CellWidth, ErrTunneling)
	}
	return nil
}

// LoadTuning reads a YAML tuning file over the current configuration,
// validates the result and applies it. Keys missing from the file keep
// their current values.
func LoadTuning(filename string) (*Tuning, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read tuning %s: %w", filename, err)
	}

	t, err := ParseTuning(data)
	if err != nil {
		return nil, fmt.Errorf("tuning %s: %w", filename, err)
	}
	if err := t.Apply(); err != nil {
		return nil, fmt.Errorf("tuning %s: %w", filename, err)
	}
	return t, nil
}

// ParseTuning overlays YAML data on the current configuration without applying it.
func ParseTuning(data []byte) (*Tuning, error) {
	t := CurrentTuning()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, err
	}
	return &t, nil
}
