package motion

import (
	"math"

	"github.com/spindleworks/ridgerun/shared/gamemath"
)

// PlatformConfig tunes one waypoint platform.
type PlatformConfig struct {
	// Speed along the path in world units per second.
	Speed float64
	// Cyclic loops the waypoint list end to start. Otherwise the
	// platform ping-pongs, reversing at the last waypoint.
	Cyclic bool
	// WaitTime pauses the platform at every waypoint, in seconds.
	WaitTime float64
	// EaseExponent shapes travel between waypoints, from 1 (linear)
	// up to about 3.
	EaseExponent float64
	// PassengerMask selects the layers scanned for carried bodies.
	PassengerMask Mask
	// SkinWidth and RaySpacing configure the platform's ray grid and
	// should match the bodies it carries.
	SkinWidth  float64
	RaySpacing float64
}

// ControllerByBody resolves the Controller that moves a body found by
// the passenger scan. Returning nil leaves the body where it is.
type ControllerByBody func(body any) *Controller

// ColliderSync is called right after the platform box translates,
// before passengers standing on top are moved. Implementations move
// the platform's collider in the raycast world so those passengers
// land on the new position.
type ColliderSync func(bounds Rect)

// passengerMove is one queued push for one carried body.
type passengerMove struct {
	body       any
	disp       gamemath.Vec2
	standing   bool
	moveBefore bool
}

// Transporter moves a platform along a waypoint path and carries the
// bodies it pushes or that ride on top. Passengers move through their
// own controllers so they still collide with the world; each is moved
// either before or after the platform itself so neither tunnels
// through the other.
type Transporter struct {
	caster Raycaster
	cfg    PlatformConfig
	grid   RayOriginGrid
	bounds Rect

	// waypoints are world-space targets, reversed in place when a
	// ping-pong path turns around.
	waypoints []gamemath.Vec2
	fromIndex int
	progress  float64
	waitLeft  float64

	lookup ControllerByBody
	sync   ColliderSync

	moves       []passengerMove
	seen        map[any]struct{}
	controllers map[any]*Controller
}

// NewTransporter builds a platform at bounds following waypoints given
// as offsets from the starting position; they are anchored to world
// space once, here. lookup maps scan hits to passenger controllers and
// sync keeps the platform's collider in step (either may be nil).
func NewTransporter(caster Raycaster, bounds Rect, waypoints []gamemath.Vec2, cfg PlatformConfig, lookup ControllerByBody, sync ColliderSync) *Transporter {
	t := &Transporter{
		caster:      caster,
		cfg:         cfg,
		grid:        NewRayOriginGrid(cfg.SkinWidth, cfg.RaySpacing),
		bounds:      bounds,
		waypoints:   make([]gamemath.Vec2, len(waypoints)),
		lookup:      lookup,
		sync:        sync,
		seen:        make(map[any]struct{}),
		controllers: make(map[any]*Controller),
	}
	for i, w := range waypoints {
		t.waypoints[i] = bounds.Min.Add(w)
	}
	t.grid.UpdateOrigins(bounds)
	return t
}

// Bounds returns the platform's current box.
func (t *Transporter) Bounds() Rect { return t.bounds }

// Grid exposes the ray grid, mainly for debug drawing.
func (t *Transporter) Grid() *RayOriginGrid { return &t.grid }

// Waypoints returns the world-space path. The slice is live and
// reverses when a ping-pong path turns around; treat it as read-only.
func (t *Transporter) Waypoints() []gamemath.Vec2 { return t.waypoints }

// InvalidatePassengers drops the cached body-to-controller mapping,
// forcing fresh lookups on the next scan.
func (t *Transporter) InvalidatePassengers() {
	clear(t.controllers)
}

// Update advances the platform by dt and carries its passengers. It
// returns the displacement applied this step.
func (t *Transporter) Update(dt float64) gamemath.Vec2 {
	t.grid.UpdateOrigins(t.bounds)

	disp := t.advance(dt)
	t.scanPassengers(disp)

	t.applyPassengerMoves(true)
	t.bounds = t.bounds.Offset(disp)
	if t.sync != nil {
		t.sync(t.bounds)
	}
	t.applyPassengerMoves(false)
	return disp
}

// advance computes this step's displacement along the waypoint path.
func (t *Transporter) advance(dt float64) gamemath.Vec2 {
	if len(t.waypoints) < 2 {
		return gamemath.Vec2{}
	}
	if t.waitLeft > 0 {
		t.waitLeft -= dt
		return gamemath.Vec2{}
	}

	t.fromIndex %= len(t.waypoints)
	from := t.waypoints[t.fromIndex]
	to := t.waypoints[(t.fromIndex+1)%len(t.waypoints)]

	t.progress += dt * t.cfg.Speed / gamemath.Dist(from, to)
	t.progress = gamemath.Clamp01(t.progress)
	pos := gamemath.LerpVec(from, to, gamemath.Ease(t.progress, t.cfg.EaseExponent))
	disp := pos.Sub(t.bounds.Min)

	if t.progress >= 1 {
		t.progress = 0
		t.fromIndex++
		if !t.cfg.Cyclic && t.fromIndex >= len(t.waypoints)-1 {
			t.fromIndex = 0
			reverse(t.waypoints)
		}
		t.waitLeft = t.cfg.WaitTime
	}
	return disp
}

func reverse(ws []gamemath.Vec2) {
	for i, j := 0, len(ws)-1; i < j; i, j = i+1, j-1 {
		ws[i], ws[j] = ws[j], ws[i]
	}
}

// scanPassengers finds every body the move will push or carry and
// queues exactly one push per body. Three fans run: into the motion
// vertically, into it horizontally, and a short fan off the top for
// riders the platform is moving away from.
func (t *Transporter) scanPassengers(disp gamemath.Vec2) {
	t.moves = t.moves[:0]
	if t.lookup == nil || disp.IsZero() {
		return
	}
	clear(t.seen)

	dirX := gamemath.Sign(disp.X)
	dirY := gamemath.Sign(disp.Y)

	// Bodies in the way of vertical motion.
	if disp.Y != 0 {
		rayLength := math.Abs(disp.Y) + t.cfg.SkinWidth
		for i := 0; i < t.grid.VerticalRayCount; i++ {
			origin := t.grid.Origins.TopLeft
			if dirY == 1 {
				origin = t.grid.Origins.BottomLeft
			}
			origin.X += float64(i) * t.grid.VerticalRaySpacing

			hit, ok := t.caster.Cast(origin, gamemath.Vec2{Y: dirY}, rayLength, t.cfg.PassengerMask)
			if !ok || hit.Distance == 0 {
				continue
			}
			if _, dup := t.seen[hit.Body]; dup {
				continue
			}
			t.seen[hit.Body] = struct{}{}

			pushX := 0.0
			if dirY == -1 {
				// Lifting: carry the rider sideways too.
				pushX = disp.X
			}
			pushY := disp.Y - (hit.Distance-t.cfg.SkinWidth)*dirY
			t.moves = append(t.moves, passengerMove{
				body:       hit.Body,
				disp:       gamemath.Vec2{X: pushX, Y: pushY},
				standing:   dirY == -1,
				moveBefore: true,
			})
		}
	}

	// Bodies in the way of horizontal motion.
	if disp.X != 0 {
		rayLength := math.Abs(disp.X) + t.cfg.SkinWidth
		for i := 0; i < t.grid.HorizontalRayCount; i++ {
			origin := t.grid.Origins.BottomLeft
			if dirX == 1 {
				origin = t.grid.Origins.BottomRight
			}
			origin.Y -= float64(i) * t.grid.HorizontalRaySpacing

			hit, ok := t.caster.Cast(origin, gamemath.Vec2{X: dirX}, rayLength, t.cfg.PassengerMask)
			if !ok || hit.Distance == 0 {
				continue
			}
			if _, dup := t.seen[hit.Body]; dup {
				continue
			}
			t.seen[hit.Body] = struct{}{}

			// Nudge down so the pushed body senses ground contact.
			t.moves = append(t.moves, passengerMove{
				body:       hit.Body,
				disp:       gamemath.Vec2{X: disp.X - (hit.Distance-t.cfg.SkinWidth)*dirX, Y: t.cfg.SkinWidth},
				standing:   false,
				moveBefore: true,
			})
		}
	}

	// Riders on top of a platform moving down or sideways keep their
	// footing only if moved after the platform.
	if disp.Y > 0 || (disp.Y == 0 && disp.X != 0) {
		rayLength := 2 * t.cfg.SkinWidth
		for i := 0; i < t.grid.VerticalRayCount; i++ {
			origin := t.grid.Origins.TopLeft
			origin.X += float64(i) * t.grid.VerticalRaySpacing

			hit, ok := t.caster.Cast(origin, gamemath.Vec2{Y: -1}, rayLength, t.cfg.PassengerMask)
			if !ok || hit.Distance == 0 {
				continue
			}
			if _, dup := t.seen[hit.Body]; dup {
				continue
			}
			t.seen[hit.Body] = struct{}{}

			t.moves = append(t.moves, passengerMove{
				body:       hit.Body,
				disp:       disp,
				standing:   true,
				moveBefore: false,
			})
		}
	}
}

// applyPassengerMoves runs the queued pushes for one side of the
// platform's own translation.
func (t *Transporter) applyPassengerMoves(before bool) {
	for i := range t.moves {
		m := &t.moves[i]
		if m.moveBefore != before {
			continue
		}
		ctrl, cached := t.controllers[m.body]
		if !cached {
			ctrl = t.lookup(m.body)
			t.controllers[m.body] = ctrl
		}
		if ctrl == nil {
			continue
		}
		ctrl.Move(m.disp, Input{}, m.standing)
	}
}
