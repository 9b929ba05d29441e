package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/spindleworks/ridgerun/components"
	cfg "github.com/spindleworks/ridgerun/config"
	"github.com/spindleworks/ridgerun/motion"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebug toggles the ray overlay with the debug key.
func UpdateDebug(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	if GetAction(input, cfg.ActionDebugOverlay).JustPressed {
		settings := GetOrCreateSettingsMenu(ecs)
		settings.Overlay = !settings.Overlay
	}
}

// DrawDebug renders the ray origin grids, collider outlines, and
// trigger volumes when the overlay is enabled.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettingsMenu(ecs)
	if !settings.Overlay {
		return
	}

	// Get camera for world-space rendering.
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	camX := float64(width)/2 - camera.Position.X
	camY := float64(height)/2 - camera.Position.Y

	drawTriggerVolumes(ecs, screen, camX, camY, width, height)

	// Player collider and its ray fans
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		if physics.Controller == nil {
			return
		}
		drawRayGrid(screen, physics.Controller.Grid(), physics.Controller.Bounds(), camX, camY)
	})

	// Platform colliders and their ray fans
	components.Platform.Each(ecs.World, func(e *donburi.Entry) {
		platform := components.Platform.Get(e)
		if platform.Transporter == nil {
			return
		}
		drawRayGrid(screen, platform.Transporter.Grid(), platform.Transporter.Bounds(), camX, camY)
	})
}

// drawTriggerVolumes outlines every resolv object in the space.
func drawTriggerVolumes(ecs *ecs.ECS, screen *ebiten.Image, camX, camY float64, width, height int) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	// Viewport in world coordinates for culling
	viewX := -camX
	viewY := -camY
	viewW := float64(width)
	viewH := float64(height)

	for _, obj := range space.Objects() {
		if obj.X+obj.W < viewX || obj.X > viewX+viewW || obj.Y+obj.H < viewY || obj.Y > viewY+viewH {
			continue
		}

		x := obj.X + camX
		y := obj.Y + camY

		// Color by tag
		c := cfg.Magenta
		if obj.HasTags("player") {
			c = cfg.LightBlue
		} else if obj.HasTags("checkpoint") {
			c = cfg.Green
		} else if obj.HasTags("deadzone") {
			c = cfg.Red
		} else if obj.HasTags("finish") {
			c = cfg.BrightOrange
		}

		vector.StrokeRect(screen, float32(x), float32(y), float32(obj.W), float32(obj.H), 1, c, false)
	}
}

// drawRayGrid marks the collider outline and every ray origin along its
// edges.
func drawRayGrid(screen *ebiten.Image, grid *motion.RayOriginGrid, bounds motion.Rect, camX, camY float64) {
	grid.UpdateOrigins(bounds)

	vector.StrokeRect(screen,
		float32(bounds.Min.X+camX), float32(bounds.Min.Y+camY),
		float32(bounds.W()), float32(bounds.H()),
		1, cfg.Render.DebugHit, false)

	o := grid.Origins

	// Vertical fans run along the top and bottom edges
	for i := 0; i < grid.VerticalRayCount; i++ {
		x := o.TopLeft.X + float64(i)*grid.VerticalRaySpacing
		drawRayDot(screen, x+camX, o.TopLeft.Y+camY)
		drawRayDot(screen, x+camX, o.BottomLeft.Y+camY)
	}

	// Horizontal fans run along the left and right edges
	for i := 0; i < grid.HorizontalRayCount; i++ {
		y := o.TopLeft.Y + float64(i)*grid.HorizontalRaySpacing
		drawRayDot(screen, o.TopLeft.X+camX, y+camY)
		drawRayDot(screen, o.TopRight.X+camX, y+camY)
	}
}

func drawRayDot(screen *ebiten.Image, x, y float64) {
	vector.FillRect(screen, float32(x)-1, float32(y)-1, 2, 2, cfg.Render.DebugRay, false)
}
