// Package world backs the motion package's raycast queries with a
// chipmunk collision space. The space is never stepped; it serves as
// a static index of solid geometry plus kinematic boxes for bodies
// that move, and answers segment queries deterministically.
package world

import (
	"github.com/jakecoffman/cp"
	"github.com/spindleworks/ridgerun/motion"
	"github.com/spindleworks/ridgerun/shared/gamemath"
)

// Collision layers. Bodies collide with solids, one-way platforms and
// moving platforms; platforms scan the rider layer for passengers.
const (
	LayerSolid motion.Mask = 1 << iota
	LayerOneWay
	LayerPlatform
	LayerRider
)

// World owns the collision space and the colliders registered in it.
type World struct {
	space *cp.Space
}

// New builds an empty collision world.
func New() *World {
	return &World{space: cp.NewSpace()}
}

// Collider is one shape in the world. Owner is the opaque identity
// surfaced through motion.Hit.Body, usually the entity the shape
// belongs to.
type Collider struct {
	w     *World
	body  *cp.Body
	shape *cp.Shape
	rect  motion.Rect
	tag   string
	owner any
}

// Rect returns the collider's box. For slopes it is the triangle's
// bounding box.
func (c *Collider) Rect() motion.Rect { return c.rect }

// Tag returns the collision tag the collider was created with.
func (c *Collider) Tag() string { return c.tag }

// Owner returns the identity surfaced on hits against this collider.
func (c *Collider) Owner() any { return c.owner }

// SetOwner rebinds the hit identity, for colliders created before
// their entity.
func (c *Collider) SetOwner(owner any) { c.owner = owner }

// AddSolid registers a static solid box.
func (w *World) AddSolid(r motion.Rect, layer motion.Mask, owner any) *Collider {
	return w.addStaticBox(r, layer, "", owner)
}

// AddOneWay registers a static platform bodies may pass upward
// through and drop down from.
func (w *World) AddOneWay(r motion.Rect, layer motion.Mask, owner any) *Collider {
	return w.addStaticBox(r, layer, motion.PassThroughTag, owner)
}

func (w *World) addStaticBox(r motion.Rect, layer motion.Mask, tag string, owner any) *Collider {
	bb := cp.BB{L: r.Min.X, B: r.Min.Y, R: r.Max.X, T: r.Max.Y}
	shape := cp.NewBox2(w.space.StaticBody, bb, 0)
	return w.register(w.space.StaticBody, shape, r, layer, tag, owner)
}

// AddSlope registers a static triangle. Vertex order does not matter;
// the convex hull fixes the winding so surface normals face outward.
func (w *World) AddSlope(a, b, c gamemath.Vec2, layer motion.Mask, owner any) *Collider {
	verts := []cp.Vector{cpVec(a), cpVec(b), cpVec(c)}
	shape := cp.NewPolyShape(w.space.StaticBody, 3, verts, cp.NewTransformIdentity(), 0)
	bounds := motion.Rect{
		Min: gamemath.Vec2{X: min3(a.X, b.X, c.X), Y: min3(a.Y, b.Y, c.Y)},
		Max: gamemath.Vec2{X: max3(a.X, b.X, c.X), Y: max3(a.Y, b.Y, c.Y)},
	}
	return w.register(w.space.StaticBody, shape, bounds, layer, "", owner)
}

// AddMover registers a kinematic box that follows a moving body, a
// platform or a rider. Reposition it with MoveTo.
func (w *World) AddMover(r motion.Rect, layer motion.Mask, tag string, owner any) *Collider {
	body := cp.NewKinematicBody()
	body.SetPosition(cpVec(r.Center()))
	w.space.AddBody(body)
	shape := cp.NewBox(body, r.W(), r.H(), 0)
	return w.register(body, shape, r, layer, tag, owner)
}

func (w *World) register(body *cp.Body, shape *cp.Shape, r motion.Rect, layer motion.Mask, tag string, owner any) *Collider {
	c := &Collider{w: w, body: body, shape: shape, rect: r, tag: tag, owner: owner}
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, uint(layer), uint(cp.ALL_CATEGORIES)))
	shape.UserData = c
	w.space.AddShape(shape)
	return c
}

// MoveTo repositions a mover collider and refreshes the spatial
// index. Static colliders do not move.
func (c *Collider) MoveTo(r motion.Rect) {
	if c.body == c.w.space.StaticBody {
		return
	}
	c.rect = r
	c.body.SetPosition(cpVec(r.Center()))
	c.w.space.ReindexShapesForBody(c.body)
}

// Remove takes the collider out of the world.
func (w *World) Remove(c *Collider) {
	w.space.RemoveShape(c.shape)
	if c.body != w.space.StaticBody {
		w.space.RemoveBody(c.body)
	}
}

// Cast fires a segment query and reports the nearest surface crossing
// on the given layers. It implements motion.Raycaster. A cast that
// starts inside a collider does not see that collider's surface.
func (w *World) Cast(origin, dir gamemath.Vec2, maxDist float64, mask motion.Mask) (motion.Hit, bool) {
	end := origin.Add(dir.Scale(maxDist))
	filter := cp.NewShapeFilter(cp.NO_GROUP, uint(cp.ALL_CATEGORIES), uint(mask))
	info := w.space.SegmentQueryFirst(cpVec(origin), cpVec(end), 0, filter)
	if info.Shape == nil {
		return motion.Hit{}, false
	}
	c := info.Shape.UserData.(*Collider)
	return motion.Hit{
		Distance: info.Alpha * maxDist,
		Normal:   gamemath.Vec2{X: info.Normal.X, Y: info.Normal.Y},
		Tag:      c.tag,
		Body:     c.owner,
	}, true
}

func cpVec(v gamemath.Vec2) cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

func min3(a, b, c float64) float64 { return min(a, min(b, c)) }
func max3(a, b, c float64) float64 { return max(a, max(b, c)) }
