package motion

import (
	"math"

	"github.com/spindleworks/ridgerun/shared/gamemath"
)

// Config holds the tuning shared by resolvers and the bodies built on
// them.
type Config struct {
	// SkinWidth is the inset between the collider surface and the ray
	// origins. Rays start inside the body so surfaces already in
	// contact stay within reach.
	SkinWidth float64
	// RaySpacing is the desired distance between adjacent rays.
	RaySpacing float64
	// MaxClimbAngle and MaxDescendAngle bound walkable slopes, in
	// degrees. Steeper surfaces act as walls.
	MaxClimbAngle   float64
	MaxDescendAngle float64
	// SolidMask selects the layers the body collides with.
	SolidMask Mask
	// DropThroughDelay is how long a requested drop keeps
	// pass-through platforms disabled, in seconds.
	DropThroughDelay float64
}

// DefaultConfig returns tuning suited to unit-sized bodies: quarter
// unit ray spacing and a thin skin.
func DefaultConfig() Config {
	return Config{
		SkinWidth:        0.015,
		RaySpacing:       0.25,
		MaxClimbAngle:    80,
		MaxDescendAngle:  75,
		SolidMask:        ^Mask(0),
		DropThroughDelay: 0.5,
	}
}

// Resolver clips requested displacements for one kinematic body
// against solid geometry. It owns the body's collider box and ray
// grid; contact results go to the CollisionState passed into Resolve.
//
// Resolution is axis-separated: slope descent first, then the
// horizontal fan, then the vertical fan. The skin inset keeps resting
// surfaces within ray reach, so a grounded body keeps reporting Below
// at zero cost in displacement.
type Resolver struct {
	caster Raycaster
	cfg    Config
	grid   RayOriginGrid
	bounds Rect
}

// NewResolver builds a resolver for a body occupying bounds.
func NewResolver(caster Raycaster, bounds Rect, cfg Config) *Resolver {
	r := &Resolver{
		caster: caster,
		cfg:    cfg,
		grid:   NewRayOriginGrid(cfg.SkinWidth, cfg.RaySpacing),
		bounds: bounds,
	}
	r.grid.UpdateOrigins(bounds)
	return r
}

// Bounds returns the body's current collider box.
func (r *Resolver) Bounds() Rect { return r.bounds }

// SetBounds teleports or resizes the collider box without collision
// checks.
func (r *Resolver) SetBounds(b Rect) { r.bounds = b }

// Grid exposes the ray grid, mainly for debug drawing.
func (r *Resolver) Grid() *RayOriginGrid { return &r.grid }

// Config returns the resolver tuning.
func (r *Resolver) Config() Config { return r.cfg }

// Resolve clips disp against solid geometry and translates the body
// by the result, which it returns. st records which sides made
// contact this move. input carries directional intent; holding down
// starts a drop through pass-through platforms. standingOnPlatform
// forces a grounded result and is set by platforms moving their
// passengers.
func (r *Resolver) Resolve(st *CollisionState, disp gamemath.Vec2, input Input, standingOnPlatform bool) gamemath.Vec2 {
	r.grid.UpdateOrigins(r.bounds)
	st.Reset()
	st.PrevRequested = disp
	if st.FacingDir == 0 {
		st.FacingDir = 1
	}

	if disp.Y > 0 {
		r.descendSlope(st, &disp)
	}
	if disp.X != 0 {
		st.FacingDir = int(gamemath.Sign(disp.X))
	}
	r.horizontalCollisions(st, &disp)
	if disp.Y != 0 {
		r.verticalCollisions(st, &disp, input)
	}

	r.bounds = r.bounds.Offset(disp)
	if standingOnPlatform {
		st.Below = true
	}
	return disp
}

// horizontalCollisions clips disp.X against walls and converts foot
// contact with walkable slopes into climb motion. The fan always
// fires, even for a zero request, so wall contact is sensed while
// standing still.
func (r *Resolver) horizontalCollisions(st *CollisionState, disp *gamemath.Vec2) {
	dirX := float64(st.FacingDir)
	rayLength := math.Abs(disp.X) + r.cfg.SkinWidth
	if math.Abs(disp.X) < r.cfg.SkinWidth {
		// Feeler length for wall sensing without movement.
		rayLength = 2 * r.cfg.SkinWidth
	}

	for i := 0; i < r.grid.HorizontalRayCount; i++ {
		origin := r.grid.Origins.BottomLeft
		if dirX == 1 {
			origin = r.grid.Origins.BottomRight
		}
		origin.Y -= float64(i) * r.grid.HorizontalRaySpacing

		hit, ok := r.caster.Cast(origin, gamemath.Vec2{X: dirX}, rayLength, r.cfg.SolidMask)
		if !ok {
			continue
		}
		if hit.Distance == 0 {
			// Inside another collider, usually a platform shoving the
			// body. Let the remaining rays resolve the move.
			continue
		}

		slopeAngle := SlopeAngle(hit.Normal)

		// Only the foot ray may start or continue a climb.
		if i == 0 && slopeAngle <= r.cfg.MaxClimbAngle {
			if st.DescendingSlope {
				st.DescendingSlope = false
				*disp = st.PrevRequested
			}
			distToSlope := 0.0
			if slopeAngle != st.PrevSlopeAngle {
				// New incline: close the gap first so the climb
				// starts from the slope base.
				distToSlope = hit.Distance - r.cfg.SkinWidth
				disp.X -= distToSlope * dirX
			}
			r.climbSlope(st, disp, slopeAngle)
			disp.X += distToSlope * dirX
		}

		if !st.ClimbingSlope || slopeAngle > r.cfg.MaxClimbAngle {
			disp.X = (hit.Distance - r.cfg.SkinWidth) * dirX
			rayLength = hit.Distance
			if st.ClimbingSlope {
				// Pinned against a wall mid-climb: match Y to the
				// clipped X so the body stays on the incline.
				disp.Y = -math.Tan(st.SlopeAngle*gamemath.Deg2Rad) * math.Abs(disp.X)
			}
			st.Left = dirX == -1
			st.Right = dirX == 1
		}
	}
}

// climbSlope redirects the horizontal request along the incline,
// treating |disp.X| as distance to cover on the surface. A jump
// already moving the body up faster than the climb wins out.
func (r *Resolver) climbSlope(st *CollisionState, disp *gamemath.Vec2, slopeAngle float64) {
	dist := math.Abs(disp.X)
	climbY := -math.Sin(slopeAngle*gamemath.Deg2Rad) * dist
	if disp.Y >= climbY {
		disp.Y = climbY
		disp.X = math.Cos(slopeAngle*gamemath.Deg2Rad) * dist * gamemath.Sign(disp.X)
		st.Below = true
		st.ClimbingSlope = true
		st.SlopeAngle = slopeAngle
	}
}

// descendSlope keeps the body glued to a walkable decline instead of
// stair-stepping off it. The probe drops from the trailing bottom
// corner; the surface qualifies only when it faces the movement
// direction and sits close enough to reach this move.
func (r *Resolver) descendSlope(st *CollisionState, disp *gamemath.Vec2) {
	dirX := gamemath.Sign(disp.X)
	origin := r.grid.Origins.BottomRight
	if dirX == 1 {
		origin = r.grid.Origins.BottomLeft
	}

	// A qualifying surface lies at most tan(maxDescend)*|dx| below
	// the skin inset, so the probe is bounded.
	probe := math.Tan(r.cfg.MaxDescendAngle*gamemath.Deg2Rad)*math.Abs(disp.X) + 2*r.cfg.SkinWidth
	hit, ok := r.caster.Cast(origin, gamemath.Vec2{Y: 1}, probe, r.cfg.SolidMask)
	if !ok {
		return
	}

	slopeAngle := SlopeAngle(hit.Normal)
	if slopeAngle == 0 || slopeAngle > r.cfg.MaxDescendAngle {
		return
	}
	if gamemath.Sign(hit.Normal.X) != dirX {
		return
	}
	if hit.Distance-r.cfg.SkinWidth > math.Tan(slopeAngle*gamemath.Deg2Rad)*math.Abs(disp.X) {
		// Too far above the surface; falling covers it faster.
		return
	}

	dist := math.Abs(disp.X)
	disp.X = math.Cos(slopeAngle*gamemath.Deg2Rad) * dist * dirX
	disp.Y += math.Sin(slopeAngle*gamemath.Deg2Rad) * dist

	st.SlopeAngle = slopeAngle
	st.DescendingSlope = true
	st.Below = true
}

// verticalCollisions clips disp.Y against floors and ceilings. The
// fan is offset by the already-resolved horizontal displacement so it
// probes where the body is about to be. Pass-through platforms block
// only downward motion, and a held down input starts a timed drop.
func (r *Resolver) verticalCollisions(st *CollisionState, disp *gamemath.Vec2, input Input) {
	dirY := gamemath.Sign(disp.Y)
	rayLength := math.Abs(disp.Y) + r.cfg.SkinWidth

	for i := 0; i < r.grid.VerticalRayCount; i++ {
		origin := r.grid.Origins.TopLeft
		if dirY == 1 {
			origin = r.grid.Origins.BottomLeft
		}
		origin.X += float64(i)*r.grid.VerticalRaySpacing + disp.X

		hit, ok := r.caster.Cast(origin, gamemath.Vec2{Y: dirY}, rayLength, r.cfg.SolidMask)
		if !ok {
			continue
		}

		if hit.Tag == PassThroughTag {
			if dirY == -1 || hit.Distance == 0 {
				continue
			}
			if st.FallingThroughPlatform {
				continue
			}
			if input.Y == 1 {
				st.FallingThroughPlatform = true
				st.FallThroughTimer = r.cfg.DropThroughDelay
				continue
			}
		}

		disp.Y = (hit.Distance - r.cfg.SkinWidth) * dirY
		rayLength = hit.Distance
		if st.ClimbingSlope {
			// Ceiling hit mid-climb: shorten X to what the clipped
			// rise allows.
			disp.X = -disp.Y / math.Tan(st.SlopeAngle*gamemath.Deg2Rad) * gamemath.Sign(disp.X)
		}

		st.Above = dirY == -1
		st.Below = dirY == 1
	}

	if st.ClimbingSlope {
		r.climbTransition(st, disp)
	}
}

// climbTransition catches the slope angle changing mid-climb. Probing
// horizontally at the height the body ends this move, it clips X to
// the new incline so the next move starts from its base.
func (r *Resolver) climbTransition(st *CollisionState, disp *gamemath.Vec2) {
	dirX := gamemath.Sign(disp.X)
	rayLength := math.Abs(disp.X) + r.cfg.SkinWidth
	origin := r.grid.Origins.BottomLeft
	if dirX == 1 {
		origin = r.grid.Origins.BottomRight
	}
	origin.Y += disp.Y

	hit, ok := r.caster.Cast(origin, gamemath.Vec2{X: dirX}, rayLength, r.cfg.SolidMask)
	if !ok {
		return
	}
	if slopeAngle := SlopeAngle(hit.Normal); slopeAngle != st.SlopeAngle {
		disp.X = (hit.Distance - r.cfg.SkinWidth) * dirX
		st.SlopeAngle = slopeAngle
	}
}
