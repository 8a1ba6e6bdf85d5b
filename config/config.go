package config

import "image/color"

// GridConfig fixes the tile cell size shared by every level.
type GridConfig struct {
	CellWidth  float64 `yaml:"cellWidth" json:"cellWidth"`
	CellHeight float64 `yaml:"cellHeight" json:"cellHeight"`
}

// PlayerConfig contains the actor's collision box dimensions
type PlayerConfig struct {
	Width       float64 `yaml:"width" json:"width"`
	StandHeight float64 `yaml:"standHeight" json:"standHeight"`
	DuckHeight  float64 `yaml:"duckHeight" json:"duckHeight"`
}

// PhysicsConfig contains per-frame integration values. Speeds are world
// units per frame.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity" json:"gravity"`
	MaxFallSpeed float64 `yaml:"maxFallSpeed" json:"maxFallSpeed"`

	// Wall sliding caps fall speed at MaxFallSpeed / WallSlideDivisor
	WallSlideDivisor float64 `yaml:"wallSlideDivisor" json:"wallSlideDivisor"`
	WallNudge        float64 `yaml:"wallNudge" json:"wallNudge"`
}

// MovementConfig contains run, duck and jump tuning plus the default timer
// windows. Windows are in seconds.
type MovementConfig struct {
	// Run
	Acceleration float64 `yaml:"acceleration" json:"acceleration"`
	Deceleration float64 `yaml:"deceleration" json:"deceleration"`
	MaxSpeed     float64 `yaml:"maxSpeed" json:"maxSpeed"`

	// Duck
	DuckSpeedDivisor float64 `yaml:"duckSpeedDivisor" json:"duckSpeedDivisor"`

	// Jump
	JumpSpeed          float64 `yaml:"jumpSpeed" json:"jumpSpeed"`
	JumpCutDivisor     float64 `yaml:"jumpCutDivisor" json:"jumpCutDivisor"`
	JumpTaperThreshold float64 `yaml:"jumpTaperThreshold" json:"jumpTaperThreshold"`

	// Timer windows
	JumpWindow        float64 `yaml:"jumpWindow" json:"jumpWindow"`
	StickWindow       float64 `yaml:"stickWindow" json:"stickWindow"`
	SlideWindow       float64 `yaml:"slideWindow" json:"slideWindow"`
	GroundGraceWindow float64 `yaml:"groundGraceWindow" json:"groundGraceWindow"`
	BufferWindow      float64 `yaml:"bufferWindow" json:"bufferWindow"`
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 // How fast camera follows the actor (0.0-1.0)
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowOverlay    bool // Draw contact flags and the resolv space
	LogTransitions bool // Log jump and wall state changes
}

// Config holds window and loop settings
type Config struct {
	Width    int
	Height   int
	TickRate int
}

// FrameTime is the fixed simulation step in seconds.
func (c *Config) FrameTime() float64 {
	return 1 / float64(c.TickRate)
}

var C *Config
var Grid GridConfig
var Player PlayerConfig
var Physics PhysicsConfig
var Movement MovementConfig
var Camera CameraConfig
var Debug DebugConfig

// Palette
var (
	Background = color.RGBA{R: 24, G: 24, B: 32, A: 255}
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

func init() {
	C = &Config{
		Width:    1280,
		Height:   720,
		TickRate: 60,
	}

	Grid = GridConfig{
		CellWidth:  32,
		CellHeight: 32,
	}

	Player = PlayerConfig{
		Width:       32,
		StandHeight: 64,
		DuckHeight:  32,
	}

	Physics = PhysicsConfig{
		Gravity:          0.75,
		MaxFallSpeed:     12.0,
		WallSlideDivisor: 3.0,
		WallNudge:        0.1,
	}

	Movement = MovementConfig{
		Acceleration: 0.75,
		Deceleration: 0.5,
		MaxSpeed:     6.0,

		DuckSpeedDivisor: 1.5,

		JumpSpeed:          8.0,
		JumpCutDivisor:     3.0,
		JumpTaperThreshold: 0.1,

		JumpWindow:        0.25,
		StickWindow:       0.5,
		SlideWindow:       0.1,
		GroundGraceWindow: 0.05,
		BufferWindow:      0.05,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.15,
	}

	Debug = DebugConfig{}
}
