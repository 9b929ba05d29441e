package motion

import (
	"math"

	"github.com/spindleworks/ridgerun/shared/gamemath"
)

// Test layers.
const (
	maskSolid Mask = 1 << iota
	maskRider
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.SolidMask = maskSolid
	return cfg
}

// scene is a hand-built world of boxes and sloped segments answering
// the axis-aligned casts the movement code fires. Hits keep insertion
// order on ties, so results are fully deterministic.
type scene struct {
	boxes []sceneBox
	segs  []sceneSeg
}

type sceneBox struct {
	rect  Rect
	layer Mask
	tag   string
	id    any
}

type sceneSeg struct {
	a, b   gamemath.Vec2
	normal gamemath.Vec2
	layer  Mask
	tag    string
	id     any
}

// slopeSeg builds a segment with its walkable (upward-facing) normal.
func slopeSeg(a, b gamemath.Vec2, layer Mask, id any) sceneSeg {
	d := b.Sub(a)
	n := gamemath.Vec2{X: d.Y, Y: -d.X}
	l := n.Len()
	n = gamemath.Vec2{X: n.X / l, Y: n.Y / l}
	if n.Y > 0 {
		n = n.Scale(-1)
	}
	return sceneSeg{a: a, b: b, normal: n, layer: layer, id: id}
}

func (s *scene) Cast(origin, dir gamemath.Vec2, maxDist float64, mask Mask) (Hit, bool) {
	best := Hit{Distance: math.Inf(1)}
	found := false
	consider := func(h Hit, ok bool) {
		if ok && h.Distance <= maxDist && h.Distance < best.Distance {
			best = h
			found = true
		}
	}
	for i := range s.boxes {
		b := &s.boxes[i]
		if b.layer&mask != 0 {
			consider(castBox(origin, dir, b))
		}
	}
	for i := range s.segs {
		g := &s.segs[i]
		if g.layer&mask != 0 {
			consider(castSeg(origin, dir, g))
		}
	}
	return best, found
}

// castBox reports a zero-distance hit when the origin is already
// inside the box, the same as a physics query with queries starting
// in colliders enabled.
func castBox(origin, dir gamemath.Vec2, b *sceneBox) (Hit, bool) {
	r := b.rect
	if origin.X >= r.Min.X && origin.X <= r.Max.X && origin.Y >= r.Min.Y && origin.Y <= r.Max.Y {
		return Hit{Distance: 0, Normal: dir.Scale(-1), Tag: b.tag, Body: b.id}, true
	}
	switch {
	case dir.X == 1:
		if origin.Y < r.Min.Y || origin.Y > r.Max.Y || origin.X > r.Min.X {
			return Hit{}, false
		}
		return Hit{Distance: r.Min.X - origin.X, Normal: gamemath.Vec2{X: -1}, Tag: b.tag, Body: b.id}, true
	case dir.X == -1:
		if origin.Y < r.Min.Y || origin.Y > r.Max.Y || origin.X < r.Max.X {
			return Hit{}, false
		}
		return Hit{Distance: origin.X - r.Max.X, Normal: gamemath.Vec2{X: 1}, Tag: b.tag, Body: b.id}, true
	case dir.Y == 1:
		if origin.X < r.Min.X || origin.X > r.Max.X || origin.Y > r.Min.Y {
			return Hit{}, false
		}
		return Hit{Distance: r.Min.Y - origin.Y, Normal: gamemath.Vec2{Y: -1}, Tag: b.tag, Body: b.id}, true
	default: // dir.Y == -1
		if origin.X < r.Min.X || origin.X > r.Max.X || origin.Y < r.Max.Y {
			return Hit{}, false
		}
		return Hit{Distance: origin.Y - r.Max.Y, Normal: gamemath.Vec2{Y: 1}, Tag: b.tag, Body: b.id}, true
	}
}

func castSeg(origin, dir gamemath.Vec2, g *sceneSeg) (Hit, bool) {
	const eps = 1e-9
	a, b := g.a, g.b
	if dir.Y == 0 {
		if origin.Y < math.Min(a.Y, b.Y)-eps || origin.Y > math.Max(a.Y, b.Y)+eps || a.Y == b.Y {
			return Hit{}, false
		}
		frac := (origin.Y - a.Y) / (b.Y - a.Y)
		x := a.X + frac*(b.X-a.X)
		dist := (x - origin.X) * dir.X
		if dist < 0 {
			return Hit{}, false
		}
		return Hit{Distance: dist, Normal: g.normal, Tag: g.tag, Body: g.id}, true
	}
	if origin.X < math.Min(a.X, b.X)-eps || origin.X > math.Max(a.X, b.X)+eps || a.X == b.X {
		return Hit{}, false
	}
	frac := (origin.X - a.X) / (b.X - a.X)
	y := a.Y + frac*(b.Y-a.Y)
	dist := (y - origin.Y) * dir.Y
	if dist < 0 {
		return Hit{}, false
	}
	return Hit{Distance: dist, Normal: g.normal, Tag: g.tag, Body: g.id}, true
}
