package motion

import "github.com/spindleworks/ridgerun/shared/gamemath"

// Controller binds a Resolver to the per-body CollisionState and
// drives its timers. One Controller moves exactly one body; platforms
// use a Transporter instead.
type Controller struct {
	resolver *Resolver
	state    CollisionState
}

// NewController builds a controller for a body occupying bounds.
func NewController(caster Raycaster, bounds Rect, cfg Config) *Controller {
	return &Controller{
		resolver: NewResolver(caster, bounds, cfg),
		state:    CollisionState{FacingDir: 1},
	}
}

// Tick advances the drop-through timer. Call once per simulation
// step, before Move.
func (c *Controller) Tick(dt float64) {
	c.state.TickFallThrough(dt)
}

// Move clips disp against the world, applies it to the body and
// returns the displacement actually applied. standingOnPlatform is
// passed by platforms carrying the body and forces grounded contact;
// ordinary callers pass false.
func (c *Controller) Move(disp gamemath.Vec2, input Input, standingOnPlatform bool) gamemath.Vec2 {
	return c.resolver.Resolve(&c.state, disp, input, standingOnPlatform)
}

// State exposes the contact record from the latest Move. Treat it as
// read-only; the next Move rewrites it in place.
func (c *Controller) State() *CollisionState { return &c.state }

// Bounds returns the body's collider box.
func (c *Controller) Bounds() Rect { return c.resolver.Bounds() }

// SetBounds teleports or resizes the body without collision checks.
func (c *Controller) SetBounds(b Rect) { c.resolver.SetBounds(b) }

// Pos returns the top-left corner of the collider box.
func (c *Controller) Pos() gamemath.Vec2 { return c.resolver.Bounds().Min }

// Grid exposes the ray grid, mainly for debug drawing.
func (c *Controller) Grid() *RayOriginGrid { return c.resolver.Grid() }

// Config returns the resolver tuning the body was built with.
func (c *Controller) Config() Config { return c.resolver.Config() }
