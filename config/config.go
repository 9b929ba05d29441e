package config

import (
	"image/color"
	"math"
)

// PlayerConfig contains all player-related configuration values.
// Jump tuning is authored as an arc (heights and time to apex); gravity
// and takeoff speeds are derived so designers never edit them directly.
type PlayerConfig struct {
	// Movement (pixels and seconds)
	MoveSpeed        float64
	AccelGrounded    float64
	AccelAirborne    float64
	FrictionGrounded float64
	FrictionAirborne float64

	// Jump arc
	MaxJumpHeight float64
	MinJumpHeight float64
	TimeToApex    float64

	// Wall interaction
	WallSlideSpeedMax float64
	WallStickTime     float64
	WallJumpClimbX    float64
	WallJumpClimbY    float64
	WallJumpOffX      float64
	WallJumpOffY      float64
	WallLeapX         float64
	WallLeapY         float64

	// Dimensions
	Width  float64
	Height float64
}

// Gravity is the downward acceleration implied by the max jump arc.
func (p PlayerConfig) Gravity() float64 {
	return 2 * p.MaxJumpHeight / (p.TimeToApex * p.TimeToApex)
}

// MaxJumpVelocity is the takeoff speed for a full-height jump.
func (p PlayerConfig) MaxJumpVelocity() float64 {
	return p.Gravity() * p.TimeToApex
}

// MinJumpVelocity is the capped rise speed when the jump key is
// released early.
func (p PlayerConfig) MinJumpVelocity() float64 {
	return math.Sqrt(2 * p.Gravity() * p.MinJumpHeight)
}

// MotionConfig contains raycast collision tuning in pixels.
type MotionConfig struct {
	SkinWidth        float64
	RaySpacing       float64
	MaxClimbAngle    float64 // degrees
	MaxDescendAngle  float64 // degrees
	DropThroughDelay float64 // seconds a body ignores one-way platforms after dropping
	MaxFallSpeed     float64
}

// PlatformDefaults are applied when a level omits platform properties.
type PlatformDefaults struct {
	Speed    float64
	WaitTime float64
	Ease     float64
}

// CameraConfig contains camera behavior configuration.
type CameraConfig struct {
	FollowSmoothing         float64 // how fast the camera closes on the player (0.0-1.0)
	LookAheadDistanceX      float64 // max horizontal look-ahead offset in pixels
	LookAheadSmoothing      float64 // how fast the look-ahead offset changes (0.0-1.0)
	LookAheadSpeedThreshold float64 // px/s below which the look-ahead freezes
	VerticalOffset          float64 // keeps the player slightly below screen center
}

// SquashStretchConfig contains jump/land scale effect configuration.
type SquashStretchConfig struct {
	JumpScaleX float64 // horizontal scale on takeoff (< 1 = narrower)
	JumpScaleY float64 // vertical scale on takeoff (> 1 = taller)
	LandScaleX float64 // horizontal scale on landing (> 1 = wider)
	LandScaleY float64 // vertical scale on landing (< 1 = shorter)
	Duration   float64 // seconds to tween back to normal
}

// RespawnConfig contains death zone and checkpoint configuration.
type RespawnConfig struct {
	Delay float64 // seconds between death and respawn
}

// RenderConfig contains the flat-color palette the renderer draws with.
type RenderConfig struct {
	Background color.RGBA
	Solid      color.RGBA
	Slope      color.RGBA
	OneWay     color.RGBA
	Platform   color.RGBA
	Player     color.RGBA
	Checkpoint color.RGBA
	DeadZone   color.RGBA
	Finish     color.RGBA
	DebugRay   color.RGBA
	DebugHit   color.RGBA
}

// HUDConfig contains HUD text configuration.
type HUDConfig struct {
	FontSize  float64
	TextColor color.RGBA
	Margin    float64
}

// PauseConfig contains pause menu configuration values.
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// DebugConfig contains debug/testing command-line options.
type DebugConfig struct {
	Overlay   bool // start with the ray overlay visible
	WatchFS   bool // reload levels from disk when they change
	LevelsDir string
}

// Config holds general game configuration.
type Config struct {
	Width    int
	Height   int
	TileSize int
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Motion MotionConfig
var Platform PlatformDefaults
var Camera CameraConfig
var SquashStretch SquashStretchConfig
var Respawn RespawnConfig
var Render RenderConfig
var HUD HUDConfig
var Pause PauseConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	SlateBlue    = color.RGBA{R: 70, G: 90, B: 120, A: 255}
	SlateLight   = color.RGBA{R: 96, G: 120, B: 150, A: 255}
	Sand         = color.RGBA{R: 214, G: 181, B: 120, A: 255}
	DarkSky      = color.RGBA{R: 24, G: 28, B: 38, A: 255}
)

// Direction constants for player facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:    640,
		Height:   360,
		TileSize: 16,
	}

	// Motion Config
	Motion = MotionConfig{
		SkinWidth:        1.0,
		RaySpacing:       8.0,
		MaxClimbAngle:    80,
		MaxDescendAngle:  75,
		DropThroughDelay: 0.5,
		MaxFallSpeed:     600.0,
	}

	// Player Config
	Player = PlayerConfig{
		// Movement
		MoveSpeed:        96.0,
		AccelGrounded:    960.0, // full speed in ~0.1s
		AccelAirborne:    480.0, // full speed in ~0.2s
		FrictionGrounded: 960.0,
		FrictionAirborne: 240.0,

		// Jump arc: four tiles high at full hold, one tile when tapped
		MaxJumpHeight: 64.0,
		MinJumpHeight: 16.0,
		TimeToApex:    0.4,

		// Wall interaction
		WallSlideSpeedMax: 48.0,
		WallStickTime:     0.25,
		WallJumpClimbX:    120.0,
		WallJumpClimbY:    256.0,
		WallJumpOffX:      136.0,
		WallJumpOffY:      112.0,
		WallLeapX:         288.0,
		WallLeapY:         272.0,

		// Dimensions
		Width:  12.0,
		Height: 24.0,
	}

	// Platform defaults
	Platform = PlatformDefaults{
		Speed:    40.0,
		WaitTime: 0.4,
		Ease:     1.0, // authored amount above linear; exponent is this plus 1
	}

	// Camera Config
	Camera = CameraConfig{
		FollowSmoothing:         0.1,
		LookAheadDistanceX:      48.0,
		LookAheadSmoothing:      0.05,
		LookAheadSpeedThreshold: 8.0,
		VerticalOffset:          -16.0,
	}

	// Squash/Stretch Config
	SquashStretch = SquashStretchConfig{
		JumpScaleX: 0.7,
		JumpScaleY: 1.4,
		LandScaleX: 1.4,
		LandScaleY: 0.6,
		Duration:   0.18,
	}

	// Respawn Config
	Respawn = RespawnConfig{
		Delay: 0.25,
	}

	// Render Config
	Render = RenderConfig{
		Background: DarkSky,
		Solid:      SlateBlue,
		Slope:      SlateLight,
		OneWay:     Sand,
		Platform:   LightBlue,
		Player:     White,
		Checkpoint: Green,
		DeadZone:   Red,
		Finish:     BrightOrange,
		DebugRay:   color.RGBA{R: 255, G: 0, B: 255, A: 120},
		DebugHit:   Magenta,
	}

	// HUD Config
	HUD = HUDConfig{
		FontSize:  12,
		TextColor: White,
		Margin:    8,
	}

	// Pause Config
	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		MenuItemHeight:    30,
		MenuItemGap:       15,
		MenuOptions:       []string{"Resume", "Restart", "Quit to Menu"},
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		Overlay:   false,
		WatchFS:   false,
		LevelsDir: "",
	}
}
