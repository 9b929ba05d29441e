// Package motion implements deterministic raycast-driven movement for
// kinematic platformer bodies: axis-separated collision resolution
// with slope traversal, pass-through platforms, and waypoint platforms
// that carry passengers.
//
// All geometry uses screen coordinates: +X right, +Y down. Gravity is
// a positive Y velocity, a jump is negative, and a body standing on
// ground reports contact Below.
package motion

import (
	"math"

	"github.com/spindleworks/ridgerun/shared/gamemath"
)

// Mask selects which collision layers a cast may hit. Layers are
// single bits combined with bitwise or.
type Mask uint32

// PassThroughTag marks colliders a body may enter from below and drop
// through on request. The resolver compares Hit.Tag against it.
const PassThroughTag = "oneway"

// Hit describes the nearest surface struck by a cast.
type Hit struct {
	// Distance from the ray origin to the surface, in world units.
	Distance float64
	// Normal is the unit surface normal at the hit point.
	Normal gamemath.Vec2
	// Tag is the collision tag of the struck collider. PassThroughTag
	// identifies one-way platforms.
	Tag string
	// Body identifies the struck collider's owner. It is stable and
	// comparable, so callers may use it as a map key.
	Body any
}

// Raycaster is the spatial query all movement is built on: cast a ray
// and report the nearest hit within maxDist on the given layers.
// Implementations must be deterministic for identical scenes.
type Raycaster interface {
	Cast(origin, dir gamemath.Vec2, maxDist float64, mask Mask) (Hit, bool)
}

// CastFunc adapts a function to the Raycaster interface.
type CastFunc func(origin, dir gamemath.Vec2, maxDist float64, mask Mask) (Hit, bool)

func (f CastFunc) Cast(origin, dir gamemath.Vec2, maxDist float64, mask Mask) (Hit, bool) {
	return f(origin, dir, maxDist, mask)
}

// SlopeAngle returns the angle in degrees between a surface normal and
// world up (0, -1). Flat ground is 0, a vertical wall is 90.
func SlopeAngle(normal gamemath.Vec2) float64 {
	d := gamemath.Clamp(-normal.Y, -1, 1)
	return math.Acos(d) * gamemath.Rad2Deg
}
