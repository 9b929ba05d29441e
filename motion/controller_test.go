package motion

import (
	"testing"

	"github.com/spindleworks/ridgerun/shared/gamemath"
	"github.com/stretchr/testify/assert"
)

func TestStandingOnPlatformForcesBelow(t *testing.T) {
	c := NewController(&scene{}, NewRect(0, 0, 1, 1), testConfig())

	applied := c.Move(gamemath.Vec2{X: 0.2, Y: -0.1}, Input{}, true)
	assert.InDelta(t, 0.2, applied.X, 1e-9)
	assert.InDelta(t, -0.1, applied.Y, 1e-9)
	assert.True(t, c.State().Below)
	assert.False(t, c.State().Above)

	// Without the platform hint the same airborne move is ungrounded.
	c.Move(gamemath.Vec2{X: 0.2, Y: -0.1}, Input{}, false)
	assert.False(t, c.State().Below)
}

func TestControllerTeleport(t *testing.T) {
	s := &scene{boxes: []sceneBox{
		{rect: NewRect(-5, 10.5, 10, 1), layer: maskSolid, id: "ground"},
	}}
	c := NewController(s, NewRect(0, 9, 1, 1), testConfig())
	c.Move(gamemath.Vec2{Y: 1}, Input{}, false)
	assert.InDelta(t, 10.5, c.Bounds().Max.Y, 1e-9)

	// Teleporting skips collision entirely; the next move settles.
	c.SetBounds(NewRect(2, 8, 1, 1))
	assert.Equal(t, gamemath.Vec2{X: 2, Y: 8}, c.Pos())
	applied := c.Move(gamemath.Vec2{Y: 2}, Input{}, false)
	assert.InDelta(t, 1.5, applied.Y, 1e-9)
	assert.True(t, c.State().Below)
}

func TestTickWithoutDropIsHarmless(t *testing.T) {
	c := NewController(&scene{}, NewRect(0, 0, 1, 1), testConfig())
	c.Tick(0.5)
	assert.False(t, c.State().FallingThroughPlatform)
	assert.Equal(t, 0.0, c.State().FallThroughTimer)
}
