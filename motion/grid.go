package motion

import (
	"math"

	"github.com/spindleworks/ridgerun/shared/gamemath"
)

// Rect is an axis-aligned box. Min is the top-left corner, Max the
// bottom-right.
type Rect struct {
	Min, Max gamemath.Vec2
}

// NewRect builds a box from its top-left corner and size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{
		Min: gamemath.Vec2{X: x, Y: y},
		Max: gamemath.Vec2{X: x + w, Y: y + h},
	}
}

func (r Rect) W() float64 { return r.Max.X - r.Min.X }
func (r Rect) H() float64 { return r.Max.Y - r.Min.Y }

// Center returns the midpoint of the box.
func (r Rect) Center() gamemath.Vec2 {
	return gamemath.Vec2{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// Offset returns the box translated by d.
func (r Rect) Offset(d gamemath.Vec2) Rect {
	return Rect{Min: r.Min.Add(d), Max: r.Max.Add(d)}
}

// Inset returns the box shrunk by m on every side.
func (r Rect) Inset(m float64) Rect {
	return Rect{
		Min: gamemath.Vec2{X: r.Min.X + m, Y: r.Min.Y + m},
		Max: gamemath.Vec2{X: r.Max.X - m, Y: r.Max.Y - m},
	}
}

// RayOrigins holds the corner anchor points ray fans start from, inset
// from the collider surface by the skin width.
type RayOrigins struct {
	TopLeft, TopRight       gamemath.Vec2
	BottomLeft, BottomRight gamemath.Vec2
}

// RayOriginGrid derives ray counts, spacing and corner origins from a
// collider box. Counts and spacing are recomputed only when the box
// size changes; origins refresh before every cast batch.
type RayOriginGrid struct {
	SkinWidth  float64
	RaySpacing float64 // desired distance between adjacent rays

	HorizontalRayCount   int
	VerticalRayCount     int
	HorizontalRaySpacing float64
	VerticalRaySpacing   float64

	Origins RayOrigins

	sizeW, sizeH float64 // inset size the counts were computed for
}

// NewRayOriginGrid builds a grid for the given skin width and desired
// ray spacing. Both must be positive.
func NewRayOriginGrid(skinWidth, raySpacing float64) RayOriginGrid {
	return RayOriginGrid{SkinWidth: skinWidth, RaySpacing: raySpacing}
}

// UpdateOrigins recomputes the corner origins for bounds, first
// recalculating counts and spacing if the box size changed.
func (g *RayOriginGrid) UpdateOrigins(bounds Rect) {
	inset := bounds.Inset(g.SkinWidth)
	if inset.W() != g.sizeW || inset.H() != g.sizeH {
		g.recalculate(inset)
	}
	g.Origins = RayOrigins{
		TopLeft:     inset.Min,
		TopRight:    gamemath.Vec2{X: inset.Max.X, Y: inset.Min.Y},
		BottomLeft:  gamemath.Vec2{X: inset.Min.X, Y: inset.Max.Y},
		BottomRight: inset.Max,
	}
}

func (g *RayOriginGrid) recalculate(inset Rect) {
	w, h := inset.W(), inset.H()
	g.sizeW, g.sizeH = w, h

	g.HorizontalRayCount = rayCount(h, g.RaySpacing)
	g.VerticalRayCount = rayCount(w, g.RaySpacing)
	g.HorizontalRaySpacing = h / float64(g.HorizontalRayCount-1)
	g.VerticalRaySpacing = w / float64(g.VerticalRayCount-1)
}

// rayCount spaces rays close to the desired spacing across a span,
// always keeping the two corner rays.
func rayCount(span, spacing float64) int {
	n := int(math.Round(span / spacing))
	if n < 2 {
		return 2
	}
	return n
}
