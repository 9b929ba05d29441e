package motion

import (
	"testing"

	"github.com/spindleworks/ridgerun/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPlatformConfig(speed float64) PlatformConfig {
	return PlatformConfig{
		Speed:         speed,
		EaseExponent:  1,
		PassengerMask: maskRider,
		SkinWidth:     0.015,
		RaySpacing:    0.25,
	}
}

func TestPlatformTravelAndPingPong(t *testing.T) {
	tr := NewTransporter(&scene{}, NewRect(0, 10, 2, 0.5),
		[]gamemath.Vec2{{X: 0, Y: 0}, {X: 4, Y: 0}},
		testPlatformConfig(1), nil, nil)

	// Linear easing: speed 1 over a 4 unit leg, half a unit per step.
	disp := tr.Update(0.5)
	assert.InDelta(t, 0.5, disp.X, 1e-9)
	assert.InDelta(t, 0.5, tr.Bounds().Min.X, 1e-9)
	assert.Equal(t, 10.0, tr.Bounds().Min.Y)

	for i := 0; i < 7; i++ {
		tr.Update(0.5)
	}
	assert.InDelta(t, 4.0, tr.Bounds().Min.X, 1e-9)

	// Not cyclic: the path reverses and walks home.
	for i := 0; i < 8; i++ {
		tr.Update(0.5)
	}
	assert.InDelta(t, 0.0, tr.Bounds().Min.X, 1e-9)
	assert.InDelta(t, 10.0, tr.Bounds().Min.Y, 1e-9)
}

func TestPlatformWaitsAtWaypoint(t *testing.T) {
	cfg := testPlatformConfig(1)
	cfg.WaitTime = 1
	tr := NewTransporter(&scene{}, NewRect(0, 10, 2, 0.5),
		[]gamemath.Vec2{{X: 0, Y: 0}, {X: 4, Y: 0}}, cfg, nil, nil)

	for i := 0; i < 8; i++ {
		tr.Update(0.5)
	}
	require.InDelta(t, 4.0, tr.Bounds().Min.X, 1e-9)

	// Two steps of wait, then motion resumes.
	assert.Equal(t, gamemath.Vec2{}, tr.Update(0.5))
	assert.Equal(t, gamemath.Vec2{}, tr.Update(0.5))
	disp := tr.Update(0.5)
	assert.InDelta(t, -0.5, disp.X, 1e-9)
}

func TestPlatformEasedTravelSlowAtEndpoints(t *testing.T) {
	cfg := testPlatformConfig(1)
	cfg.EaseExponent = 2
	tr := NewTransporter(&scene{}, NewRect(0, 10, 2, 0.5),
		[]gamemath.Vec2{{X: 0, Y: 0}, {X: 4, Y: 0}}, cfg, nil, nil)

	first := tr.Update(0.1)
	assert.Less(t, first.X, 0.05) // well under the linear 0.1 step

	// 40 steps of 0.1s cover the leg exactly; easing never changes
	// the arrival.
	for i := 0; i < 39; i++ {
		tr.Update(0.1)
	}
	assert.InDelta(t, 4.0, tr.Bounds().Min.X, 1e-9)
}

func TestPlatformCyclicLoopsWithoutReversing(t *testing.T) {
	tr := NewTransporter(&scene{}, NewRect(0, 10, 1, 0.5),
		[]gamemath.Vec2{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}},
		PlatformConfig{Speed: 2, Cyclic: true, EaseExponent: 1, SkinWidth: 0.015, RaySpacing: 0.25},
		nil, nil)

	// Leg 1: two steps of one unit each.
	tr.Update(0.5)
	tr.Update(0.5)
	assert.InDelta(t, 2.0, tr.Bounds().Min.X, 1e-9)
	assert.InDelta(t, 10.0, tr.Bounds().Min.Y, 1e-9)

	// Leg 2 down.
	tr.Update(0.5)
	tr.Update(0.5)
	assert.InDelta(t, 12.0, tr.Bounds().Min.Y, 1e-9)

	// Leg 3 returns diagonally to the anchor, then the loop resumes
	// toward the second waypoint with no reversal.
	for i := 0; i < 3; i++ {
		tr.Update(0.5)
	}
	assert.InDelta(t, 0.0, tr.Bounds().Min.X, 1e-9)
	assert.InDelta(t, 10.0, tr.Bounds().Min.Y, 1e-9)

	disp := tr.Update(0.5)
	assert.Greater(t, disp.X, 0.0)
	assert.Equal(t, 0.0, disp.Y)
}

func TestPlatformLiftsStandingRider(t *testing.T) {
	// The scan world sees the rider; the rider itself moves in an
	// empty world.
	scan := &scene{boxes: []sceneBox{
		{rect: NewRect(1, 9, 1, 1), layer: maskRider, id: "r1"},
		{rect: NewRect(2.5, 9, 1, 1), layer: maskRider, id: "ghost"},
	}}
	rider := NewController(&scene{}, NewRect(1, 9, 1, 1), testConfig())
	lookup := func(body any) *Controller {
		if body == "r1" {
			return rider
		}
		return nil // unknown bodies stay put
	}

	tr := NewTransporter(scan, NewRect(0, 10, 4, 0.5),
		[]gamemath.Vec2{{X: 0, Y: 0}, {X: 0, Y: -2}},
		testPlatformConfig(1), lookup, nil)

	disp := tr.Update(0.5)
	require.InDelta(t, -0.5, disp.Y, 1e-9)

	// Exactly one push even though several rays crossed the rider.
	assert.InDelta(t, 8.5, rider.Bounds().Min.Y, 1e-9)
	assert.True(t, rider.State().Below)
	assert.InDelta(t, 9.5, tr.Bounds().Min.Y, 1e-9)
}

func TestPlatformPushesRiderSideways(t *testing.T) {
	scan := &scene{boxes: []sceneBox{
		{rect: NewRect(4.2, 9.6, 1, 1), layer: maskRider, id: "r1"},
	}}
	rider := NewController(&scene{}, NewRect(4.2, 9.6, 1, 1), testConfig())
	lookup := func(any) *Controller { return rider }

	tr := NewTransporter(scan, NewRect(0, 10, 4, 0.5),
		[]gamemath.Vec2{{X: 0, Y: 0}, {X: 2, Y: 0}},
		testPlatformConfig(1), lookup, nil)

	tr.Update(0.5)

	// Pushed flush against the platform's leading face, with the skin
	// nudge downward that keeps ground sensing alive.
	assert.InDelta(t, tr.Bounds().Max.X, rider.Bounds().Min.X, 1e-9)
	assert.InDelta(t, 9.6+0.015, rider.Bounds().Min.Y, 1e-9)
	assert.False(t, rider.State().Below)
}

func TestPlatformMovingDownCarriesRider(t *testing.T) {
	scan := &scene{boxes: []sceneBox{
		{rect: NewRect(1, 9, 1, 1), layer: maskRider, id: "r1"},
	}}
	// The rider's world contains the platform as solid geometry, kept
	// in step through the collider sync hook.
	riderWorld := &scene{boxes: []sceneBox{
		{rect: NewRect(0, 10, 4, 0.5), layer: maskSolid, id: "plat"},
	}}
	rider := NewController(riderWorld, NewRect(1, 9, 1, 1), testConfig())
	lookup := func(any) *Controller { return rider }
	sync := func(b Rect) { riderWorld.boxes[0].rect = b }

	tr := NewTransporter(scan, NewRect(0, 10, 4, 0.5),
		[]gamemath.Vec2{{X: 0, Y: 0}, {X: 0, Y: 2}},
		testPlatformConfig(1), lookup, sync)

	// Riding down stays glued step after step. The scan world tracks
	// the carried box between steps, the way a game loop keeps its
	// colliders in step with the bodies that own them.
	for i := 0; i < 4; i++ {
		tr.Update(0.5)
		scan.boxes[0].rect = rider.Bounds()
		assert.InDelta(t, tr.Bounds().Min.Y, rider.Bounds().Max.Y, 1e-9)
		assert.True(t, rider.State().Below)
	}
	assert.InDelta(t, 12.0, tr.Bounds().Min.Y, 1e-9)
}

func TestPlatformPassengerCacheInvalidation(t *testing.T) {
	scan := &scene{boxes: []sceneBox{
		{rect: NewRect(1, 9, 1, 1), layer: maskRider, id: "r1"},
	}}
	first := NewController(&scene{}, NewRect(1, 9, 1, 1), testConfig())
	current := first
	lookup := func(any) *Controller { return current }

	tr := NewTransporter(scan, NewRect(0, 10, 4, 0.5),
		[]gamemath.Vec2{{X: 0, Y: 0}, {X: 0, Y: -4}},
		testPlatformConfig(1), lookup, nil)

	tr.Update(0.5)
	require.InDelta(t, 8.5, first.Bounds().Min.Y, 1e-9)
	scan.boxes[0].rect = first.Bounds()

	// Swapping the controller behind the same body only takes effect
	// once the cache is dropped.
	replacement := NewController(&scene{}, NewRect(1, 8.5, 1, 1), testConfig())
	current = replacement
	tr.Update(0.5)
	assert.InDelta(t, 8.0, first.Bounds().Min.Y, 1e-9)
	assert.InDelta(t, 8.5, replacement.Bounds().Min.Y, 1e-9)
	scan.boxes[0].rect = first.Bounds()

	tr.InvalidatePassengers()
	tr.Update(0.5)
	assert.InDelta(t, 8.0, first.Bounds().Min.Y, 1e-9)
	assert.InDelta(t, 8.0, replacement.Bounds().Min.Y, 1e-9)
}
