package motion

import (
	"testing"

	"github.com/spindleworks/ridgerun/shared/gamemath"
	"github.com/stretchr/testify/assert"
)

func TestGridCountsAndOrigins(t *testing.T) {
	const skin, spacing = 0.015, 0.25
	g := NewRayOriginGrid(skin, spacing)
	g.UpdateOrigins(NewRect(0, 0, 1, 1))

	// Inset span is 0.97; 0.97/0.25 rounds to 4 rays per fan.
	assert.Equal(t, 4, g.HorizontalRayCount)
	assert.Equal(t, 4, g.VerticalRayCount)
	assert.InDelta(t, 0.97/3, g.HorizontalRaySpacing, 1e-12)
	assert.InDelta(t, 0.97/3, g.VerticalRaySpacing, 1e-12)

	assert.Equal(t, gamemath.Vec2{X: skin, Y: skin}, g.Origins.TopLeft)
	assert.Equal(t, gamemath.Vec2{X: 1 - skin, Y: skin}, g.Origins.TopRight)
	assert.Equal(t, gamemath.Vec2{X: skin, Y: 1 - skin}, g.Origins.BottomLeft)
	assert.Equal(t, gamemath.Vec2{X: 1 - skin, Y: 1 - skin}, g.Origins.BottomRight)
}

func TestGridMinimumTwoRays(t *testing.T) {
	g := NewRayOriginGrid(0.015, 0.25)
	g.UpdateOrigins(NewRect(0, 0, 0.1, 0.1))
	assert.Equal(t, 2, g.HorizontalRayCount)
	assert.Equal(t, 2, g.VerticalRayCount)
	// Two rays sit on the corners, one inset span apart.
	assert.InDelta(t, 0.07, g.HorizontalRaySpacing, 1e-12)
}

func TestGridRecalculatesOnlyOnResize(t *testing.T) {
	g := NewRayOriginGrid(0.015, 0.25)
	g.UpdateOrigins(NewRect(0, 0, 1, 1))
	assert.Equal(t, 4, g.HorizontalRayCount)

	// Changing the desired spacing alone does not retune the fans; a
	// same-size box keeps the cached counts.
	g.RaySpacing = 0.5
	g.UpdateOrigins(NewRect(3, 7, 1, 1))
	assert.Equal(t, 4, g.HorizontalRayCount)

	// A resize does.
	g.UpdateOrigins(NewRect(3, 7, 1, 2))
	assert.Equal(t, 4, g.HorizontalRayCount) // round(1.97/0.5)
	assert.Equal(t, 2, g.VerticalRayCount)   // round(0.97/0.5)
}

func TestRectHelpers(t *testing.T) {
	r := NewRect(1, 2, 3, 4)
	assert.Equal(t, 3.0, r.W())
	assert.Equal(t, 4.0, r.H())
	assert.Equal(t, gamemath.Vec2{X: 2.5, Y: 4}, r.Center())

	moved := r.Offset(gamemath.Vec2{X: 1, Y: -1})
	assert.Equal(t, NewRect(2, 1, 3, 4), moved)

	inset := r.Inset(0.5)
	assert.Equal(t, NewRect(1.5, 2.5, 2, 3), inset)
}
