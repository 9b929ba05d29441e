// Package leveldata provides TMX level parsing shared between the game
// and headless tools. It has no dependencies on ebitengine, donburi, or
// resolv: pure data only.
package leveldata

import "github.com/spindleworks/ridgerun/shared/gamemath"

// Zone kinds recognized by the trigger systems.
const (
	ZoneDeadly     = "deadzone"
	ZoneCheckpoint = "checkpoint"
	ZoneFinish     = "finish"
)

// Level holds everything parsed from one TMX file, in pixel units.
type Level struct {
	Name        string
	PixelWidth  int
	PixelHeight int
	TileSize    int
	Solids      []Box
	Slopes      []Triangle
	OneWays     []Box
	Platforms   []Platform
	Spawns      []Spawn
	Zones       []Zone
}

// Box is an axis-aligned rectangle in pixels.
type Box struct {
	X, Y, W, H float64
}

// Triangle is a solid sloped tile, vertices in pixels.
type Triangle struct {
	A, B, C gamemath.Vec2
}

// Platform is a moving platform definition. Waypoints are offsets from
// the platform's top-left corner; an empty list means the platform
// never moves.
type Platform struct {
	Name      string
	Box       Box
	Waypoints []gamemath.Vec2
	Speed     float64
	Cyclic    bool
	WaitTime  float64
	Ease      float64
}

// Spawn is a player start location.
type Spawn struct {
	X, Y  float64
	Index int
}

// Zone is a trigger volume. Kind is one of the Zone constants.
type Zone struct {
	Kind string
	Name string
	Box  Box
}
