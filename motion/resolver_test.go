package motion

import (
	"math"
	"testing"

	"github.com/spindleworks/ridgerun/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const skin = 0.015

func TestSlopeAngle(t *testing.T) {
	assert.InDelta(t, 0, SlopeAngle(gamemath.Vec2{Y: -1}), 1e-9)
	assert.InDelta(t, 45, SlopeAngle(gamemath.Vec2{X: -math.Sqrt2 / 2, Y: -math.Sqrt2 / 2}), 1e-9)
	assert.InDelta(t, 90, SlopeAngle(gamemath.Vec2{X: 1}), 1e-9)
}

func TestCastFuncAdapter(t *testing.T) {
	var caster Raycaster = CastFunc(func(origin, dir gamemath.Vec2, maxDist float64, mask Mask) (Hit, bool) {
		return Hit{Distance: maxDist}, true
	})
	hit, ok := caster.Cast(gamemath.Vec2{}, gamemath.Vec2{Y: 1}, 3, maskSolid)
	assert.True(t, ok)
	assert.Equal(t, 3.0, hit.Distance)
}

func TestLandsOnGroundAndRests(t *testing.T) {
	s := &scene{boxes: []sceneBox{
		{rect: NewRect(-5, 10.5, 10, 1), layer: maskSolid, id: "ground"},
	}}
	c := NewController(s, NewRect(0, 9, 1, 1), testConfig())

	// Fall request of a full unit with only half a unit of room.
	applied := c.Move(gamemath.Vec2{Y: 1}, Input{}, false)
	assert.Equal(t, 0.0, applied.X)
	assert.InDelta(t, 0.5, applied.Y, 1e-9)
	assert.True(t, c.State().Below)
	assert.False(t, c.State().Above)
	assert.InDelta(t, 10.5, c.Bounds().Max.Y, 1e-9)

	// Resting flush: gravity keeps pulling but nothing moves, and the
	// ground contact keeps reporting.
	applied = c.Move(gamemath.Vec2{Y: 1}, Input{}, false)
	assert.InDelta(t, 0.0, applied.Y, 1e-9)
	assert.True(t, c.State().Below)
	assert.InDelta(t, 10.5, c.Bounds().Max.Y, 1e-9)
}

func TestCeilingStopsJump(t *testing.T) {
	s := &scene{boxes: []sceneBox{
		{rect: NewRect(-5, 5, 10, 1), layer: maskSolid, id: "ceiling"},
	}}
	c := NewController(s, NewRect(0, 6.3, 1, 1), testConfig())

	applied := c.Move(gamemath.Vec2{Y: -1}, Input{}, false)
	assert.InDelta(t, -0.3, applied.Y, 1e-9)
	assert.True(t, c.State().Above)
	assert.False(t, c.State().Below)
}

func TestWallStopsAndFlags(t *testing.T) {
	s := &scene{boxes: []sceneBox{
		{rect: NewRect(2.3, 8, 1, 4), layer: maskSolid, id: "wall"},
	}}
	c := NewController(s, NewRect(1, 9, 1, 1), testConfig())

	applied := c.Move(gamemath.Vec2{X: 1}, Input{}, false)
	assert.InDelta(t, 0.3, applied.X, 1e-9)
	assert.True(t, c.State().Right)
	assert.False(t, c.State().Left)
	assert.Equal(t, 1, c.State().FacingDir)

	// Flush against the wall: pushing on costs nothing.
	applied = c.Move(gamemath.Vec2{X: 1}, Input{}, false)
	assert.InDelta(t, 0.0, applied.X, 1e-9)
	assert.True(t, c.State().Right)

	// Standing still, the feeler rays keep sensing the wall.
	applied = c.Move(gamemath.Vec2{}, Input{}, false)
	assert.Equal(t, gamemath.Vec2{}, applied)
	assert.True(t, c.State().Right)
	assert.Equal(t, 1, c.State().FacingDir)

	// Walking away releases the contact and turns the body around.
	applied = c.Move(gamemath.Vec2{X: -1}, Input{}, false)
	assert.InDelta(t, -1.0, applied.X, 1e-9)
	assert.False(t, c.State().Right)
	assert.False(t, c.State().Left)
	assert.Equal(t, -1, c.State().FacingDir)
}

func TestOverlappingColliderIgnoredHorizontally(t *testing.T) {
	// The body is already inside another collider, the situation a
	// platform shoving into it produces. Zero-distance hits must not
	// clamp the move to nothing.
	s := &scene{boxes: []sceneBox{
		{rect: NewRect(0.5, 8, 2, 3), layer: maskSolid, id: "shover"},
	}}
	c := NewController(s, NewRect(0, 9, 1, 1), testConfig())

	applied := c.Move(gamemath.Vec2{X: 0.4}, Input{}, false)
	assert.InDelta(t, 0.4, applied.X, 1e-9)
	assert.False(t, c.State().Right)
}

func TestClimbSlopeRight(t *testing.T) {
	// 45 degree ramp rising to the right, its base at the body's feet.
	s := &scene{segs: []sceneSeg{
		slopeSeg(gamemath.Vec2{X: 2, Y: 11}, gamemath.Vec2{X: 4, Y: 9}, maskSolid, "ramp"),
	}}
	c := NewController(s, NewRect(1, 10, 1, 1), testConfig())

	applied := c.Move(gamemath.Vec2{X: 0.5}, Input{}, false)

	st := c.State()
	assert.True(t, st.ClimbingSlope)
	assert.True(t, st.Below)
	assert.InDelta(t, 45, st.SlopeAngle, 1e-9)

	// The foot ray reaches the incline after skin; the rest of the
	// request is spent along the surface.
	onSlope := 0.5 - skin
	assert.InDelta(t, skin+onSlope*math.Cos(45*gamemath.Deg2Rad), applied.X, 1e-9)
	assert.InDelta(t, -onSlope*math.Sin(45*gamemath.Deg2Rad), applied.Y, 1e-9)
}

func TestClimbSlopeLeft(t *testing.T) {
	// Walking left up a ramp that falls to the right.
	s := &scene{segs: []sceneSeg{
		slopeSeg(gamemath.Vec2{X: 0, Y: 9}, gamemath.Vec2{X: 2, Y: 11}, maskSolid, "ramp"),
	}}
	c := NewController(s, NewRect(0.5, 8.5, 1, 1), testConfig())

	applied := c.Move(gamemath.Vec2{X: -0.3, Y: 0.2}, Input{}, false)

	st := c.State()
	assert.True(t, st.ClimbingSlope)
	assert.False(t, st.DescendingSlope)
	assert.True(t, st.Below)
	assert.InDelta(t, 45, st.SlopeAngle, 1e-9)

	onSlope := 0.3 - skin
	assert.InDelta(t, -(skin + onSlope*math.Cos(45*gamemath.Deg2Rad)), applied.X, 1e-9)
	assert.InDelta(t, -onSlope*math.Sin(45*gamemath.Deg2Rad), applied.Y, 1e-9)
}

func TestJumpOverridesClimb(t *testing.T) {
	// A jump already rising faster than the climb would keeps its
	// vertical speed; the slope only clips the horizontal request.
	s := &scene{segs: []sceneSeg{
		slopeSeg(gamemath.Vec2{X: 2, Y: 11}, gamemath.Vec2{X: 4, Y: 9}, maskSolid, "ramp"),
	}}
	c := NewController(s, NewRect(1, 10, 1, 1), testConfig())

	applied := c.Move(gamemath.Vec2{X: 0.5, Y: -5}, Input{}, false)
	assert.False(t, c.State().ClimbingSlope)
	assert.InDelta(t, -5.0, applied.Y, 1e-9)
	assert.InDelta(t, skin, applied.X, 1e-9) // stopped at the incline
	assert.True(t, c.State().Right)
}

func TestDescendSlope(t *testing.T) {
	// Ramp falling to the right; the body walks down it without
	// leaving the surface.
	s := &scene{segs: []sceneSeg{
		slopeSeg(gamemath.Vec2{X: 0, Y: 9}, gamemath.Vec2{X: 2, Y: 11}, maskSolid, "ramp"),
	}}
	c := NewController(s, NewRect(0.5, 8.5, 1, 1), testConfig())

	applied := c.Move(gamemath.Vec2{X: 0.3, Y: 0.2}, Input{}, false)

	st := c.State()
	assert.True(t, st.DescendingSlope)
	assert.True(t, st.Below)
	assert.False(t, st.ClimbingSlope)
	assert.InDelta(t, 45, st.SlopeAngle, 1e-9)

	// X follows the surface; the vertical fan then lands the inset
	// corner flush, one skin beyond the pure slope step.
	assert.InDelta(t, 0.3*math.Cos(45*gamemath.Deg2Rad), applied.X, 1e-9)
	assert.InDelta(t, 0.3*math.Cos(45*gamemath.Deg2Rad)+skin, applied.Y, 1e-9)
}

func TestNoDescendWhenSurfaceOutOfReach(t *testing.T) {
	s := &scene{segs: []sceneSeg{
		slopeSeg(gamemath.Vec2{X: 0, Y: 9}, gamemath.Vec2{X: 2, Y: 11}, maskSolid, "ramp"),
	}}
	// Bottom edge floats a full unit above the surface.
	c := NewController(s, NewRect(0.5, 7, 1, 1), testConfig())

	applied := c.Move(gamemath.Vec2{X: 0.3, Y: 0.2}, Input{}, false)
	assert.False(t, c.State().DescendingSlope)
	assert.InDelta(t, 0.3, applied.X, 1e-9)
	assert.InDelta(t, 0.2, applied.Y, 1e-9)
}

func TestTooSteepSlopeActsAsWall(t *testing.T) {
	// 85 degree incline, past the 80 degree climb limit.
	const steep = 85
	top := gamemath.Vec2{
		X: 2 + 4*math.Cos(steep*gamemath.Deg2Rad),
		Y: 11 - 4*math.Sin(steep*gamemath.Deg2Rad),
	}
	s := &scene{segs: []sceneSeg{
		slopeSeg(gamemath.Vec2{X: 2, Y: 11}, top, maskSolid, "cliff"),
	}}
	c := NewController(s, NewRect(1, 10, 1, 1), testConfig())

	applied := c.Move(gamemath.Vec2{X: 0.5}, Input{}, false)

	st := c.State()
	assert.False(t, st.ClimbingSlope)
	assert.True(t, st.Right)
	// The foot ray stops at the incline where it crosses the ray height.
	assert.InDelta(t, skin*math.Tan((90-steep)*gamemath.Deg2Rad), applied.X, 1e-9)
	assert.Equal(t, 0.0, applied.Y)
}

func TestOneWayPlatformLanding(t *testing.T) {
	s := &scene{boxes: []sceneBox{
		{rect: NewRect(0, 12, 4, 0.2), layer: maskSolid, tag: PassThroughTag, id: "plat"},
	}}
	c := NewController(s, NewRect(1, 10.8, 1, 1), testConfig())

	applied := c.Move(gamemath.Vec2{Y: 0.5}, Input{}, false)
	assert.InDelta(t, 0.2, applied.Y, 1e-9)
	assert.True(t, c.State().Below)
}

func TestOneWayPlatformJumpThrough(t *testing.T) {
	s := &scene{boxes: []sceneBox{
		{rect: NewRect(0, 12, 4, 0.2), layer: maskSolid, tag: PassThroughTag, id: "plat"},
	}}
	c := NewController(s, NewRect(1, 12.5, 1, 1), testConfig())

	// Jumping up from underneath passes cleanly.
	applied := c.Move(gamemath.Vec2{Y: -1}, Input{}, false)
	assert.InDelta(t, -1.0, applied.Y, 1e-9)
	assert.False(t, c.State().Above)
}

func TestOneWayPlatformDropThrough(t *testing.T) {
	s := &scene{boxes: []sceneBox{
		{rect: NewRect(0, 12, 4, 0.2), layer: maskSolid, tag: PassThroughTag, id: "plat"},
	}}
	c := NewController(s, NewRect(1, 11, 1, 1), testConfig())

	// Resting on the platform without the drop input.
	applied := c.Move(gamemath.Vec2{Y: 0.5}, Input{}, false)
	require.InDelta(t, 0.0, applied.Y, 1e-9)
	require.True(t, c.State().Below)

	// Holding down lets the body fall straight through.
	applied = c.Move(gamemath.Vec2{Y: 0.5}, Input{Y: 1}, false)
	assert.InDelta(t, 0.5, applied.Y, 1e-9)
	assert.False(t, c.State().Below)
	assert.True(t, c.State().FallingThroughPlatform)
	assert.InDelta(t, 0.5, c.State().FallThroughTimer, 1e-9)

	// The suppression expires on its own.
	c.Tick(0.25)
	assert.True(t, c.State().FallingThroughPlatform)
	c.Tick(0.26)
	assert.False(t, c.State().FallingThroughPlatform)
	assert.Equal(t, 0.0, c.State().FallThroughTimer)
}

func TestResolveNormalizesZeroValueState(t *testing.T) {
	r := NewResolver(&scene{}, NewRect(0, 0, 1, 1), testConfig())
	var st CollisionState
	r.Resolve(&st, gamemath.Vec2{}, Input{}, false)
	assert.Equal(t, 1, st.FacingDir)
}

func TestPrevRequestedAndSlopeAngleCarryOver(t *testing.T) {
	s := &scene{boxes: []sceneBox{
		{rect: NewRect(-5, 10.5, 10, 1), layer: maskSolid, id: "ground"},
	}}
	c := NewController(s, NewRect(0, 9, 1, 1), testConfig())

	c.Move(gamemath.Vec2{X: 0.25, Y: 1}, Input{}, false)
	assert.Equal(t, gamemath.Vec2{X: 0.25, Y: 1}, c.State().PrevRequested)

	c.Move(gamemath.Vec2{X: -0.1, Y: 0.1}, Input{}, false)
	assert.Equal(t, gamemath.Vec2{X: -0.1, Y: 0.1}, c.State().PrevRequested)
	assert.Equal(t, 0.0, c.State().PrevSlopeAngle)
}
