package motion

import "github.com/spindleworks/ridgerun/shared/gamemath"

// Input carries the directional intent behind a move. X and Y are -1,
// 0 or +1 in screen directions, so Y == 1 means down is held. The
// resolver reads Y to start drops through pass-through platforms.
type Input struct {
	X, Y int
}

// CollisionState is the per-body contact record refreshed by every
// resolve call. One state belongs to exactly one body and is never
// shared.
type CollisionState struct {
	Above, Below bool
	Left, Right  bool

	ClimbingSlope   bool
	DescendingSlope bool

	// SlopeAngle is the surface angle in degrees of the slope touched
	// this move. PrevSlopeAngle carries the value from the move
	// before.
	SlopeAngle     float64
	PrevSlopeAngle float64

	// PrevRequested is the displacement handed to the latest move,
	// recorded before any clipping.
	PrevRequested gamemath.Vec2

	// FacingDir is the last nonzero horizontal move direction, -1 or
	// +1. It is never cleared by a reset.
	FacingDir int

	// FallingThroughPlatform suppresses pass-through platform hits
	// while a drop is in progress. FallThroughTimer holds the seconds
	// left until the flag clears on its own.
	FallingThroughPlatform bool
	FallThroughTimer       float64
}

// Reset clears the per-move contact flags, carrying the slope angle
// over into PrevSlopeAngle. Facing, drop-through state and
// PrevRequested survive.
func (s *CollisionState) Reset() {
	s.Above, s.Below = false, false
	s.Left, s.Right = false, false
	s.ClimbingSlope = false
	s.DescendingSlope = false
	s.PrevSlopeAngle = s.SlopeAngle
	s.SlopeAngle = 0
}

// TickFallThrough advances the drop-through timer, clearing the flag
// once it expires.
func (s *CollisionState) TickFallThrough(dt float64) {
	if !s.FallingThroughPlatform {
		return
	}
	s.FallThroughTimer -= dt
	if s.FallThroughTimer <= 0 {
		s.FallingThroughPlatform = false
		s.FallThroughTimer = 0
	}
}
