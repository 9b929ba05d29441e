package systems

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/spindleworks/ridgerun/components"
	cfg "github.com/spindleworks/ridgerun/config"
	"github.com/spindleworks/ridgerun/shared/gamemath"
	"github.com/spindleworks/ridgerun/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Viewport culling skips draw calls for geometry that is currently
// off-screen. A small padding prevents boxes popping in at the edges.
const cullPadding = 32.0

// whiteImage backs triangle fills; DrawTriangles needs a source texture.
var whiteImage = ebiten.NewImage(3, 3)

func init() {
	whiteImage.Fill(color.White)
}

// DrawWorld renders the level geometry, moving platforms, trigger
// zones, and the player as flat-color primitives, offset by the camera.
func DrawWorld(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Render.Background)

	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	camX := float64(width)/2 - camera.Position.X
	camY := float64(height)/2 - camera.Position.Y

	// Culling bounds in world space
	minX := camera.Position.X - float64(width)/2 - cullPadding
	maxX := camera.Position.X + float64(width)/2 + cullPadding
	minY := camera.Position.Y - float64(height)/2 - cullPadding
	maxY := camera.Position.Y + float64(height)/2 + cullPadding

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry).Current
	if level == nil {
		return
	}

	drawZones(ecs, screen, camX, camY, minX, maxX, minY, maxY)
	drawTerrain(screen, level, camX, camY, minX, maxX, minY, maxY)
	drawPlatforms(ecs, screen, camX, camY, minX, maxX, minY, maxY)
	drawPlayer(ecs, screen, camX, camY)
}

func drawTerrain(screen *ebiten.Image, level *leveldata.Level, camX, camY, minX, maxX, minY, maxY float64) {
	for _, b := range level.Solids {
		if boxHidden(b, minX, maxX, minY, maxY) {
			continue
		}
		vector.DrawFilledRect(screen,
			float32(b.X+camX), float32(b.Y+camY),
			float32(b.W), float32(b.H),
			cfg.Render.Solid, false)
	}

	for _, t := range level.Slopes {
		if triangleHidden(t, minX, maxX, minY, maxY) {
			continue
		}
		fillTriangle(screen,
			t.A.Add(gamemath.Vec2{X: camX, Y: camY}),
			t.B.Add(gamemath.Vec2{X: camX, Y: camY}),
			t.C.Add(gamemath.Vec2{X: camX, Y: camY}),
			cfg.Render.Slope)
	}

	for _, b := range level.OneWays {
		if boxHidden(b, minX, maxX, minY, maxY) {
			continue
		}
		// One-way platforms read as thin planks regardless of the
		// authored box height
		h := b.H
		if h > 4 {
			h = 4
		}
		vector.DrawFilledRect(screen,
			float32(b.X+camX), float32(b.Y+camY),
			float32(b.W), float32(h),
			cfg.Render.OneWay, false)
	}
}

func drawPlatforms(e *ecs.ECS, screen *ebiten.Image, camX, camY, minX, maxX, minY, maxY float64) {
	components.Platform.Each(e.World, func(entry *donburi.Entry) {
		platform := components.Platform.Get(entry)
		if platform.Transporter == nil {
			return
		}
		b := platform.Transporter.Bounds()
		box := leveldata.Box{X: b.Min.X, Y: b.Min.Y, W: b.W(), H: b.H()}
		if boxHidden(box, minX, maxX, minY, maxY) {
			return
		}
		vector.DrawFilledRect(screen,
			float32(box.X+camX), float32(box.Y+camY),
			float32(box.W), float32(box.H),
			cfg.Render.Platform, false)
	})
}

func drawPlayer(e *ecs.ECS, screen *ebiten.Image, camX, camY float64) {
	playerEntry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	if player.Dead {
		return
	}

	physics := components.Physics.Get(playerEntry)
	bounds := physics.Controller.Bounds()
	w, h := bounds.W(), bounds.H()

	// Squash/stretch scales around the bottom-center anchor so the
	// feet stay planted
	scaleX, scaleY := 1.0, 1.0
	if playerEntry.HasComponent(components.SquashStretch) {
		ss := components.SquashStretch.Get(playerEntry)
		if ss.ScaleX != 0 {
			scaleX = ss.ScaleX
		}
		if ss.ScaleY != 0 {
			scaleY = ss.ScaleY
		}
	}
	drawW := w * scaleX
	drawH := h * scaleY
	x := bounds.Min.X + w/2 - drawW/2
	y := bounds.Max.Y - drawH

	vector.DrawFilledRect(screen,
		float32(x+camX), float32(y+camY),
		float32(drawW), float32(drawH),
		cfg.Render.Player, false)
}

func drawZones(e *ecs.ECS, screen *ebiten.Image, camX, camY, minX, maxX, minY, maxY float64) {
	// Checkpoints fill in once activated, outline until then
	components.Checkpoint.Each(e.World, func(entry *donburi.Entry) {
		checkpoint := components.Checkpoint.Get(entry)
		obj := components.Object.Get(entry)
		box := leveldata.Box{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}
		if boxHidden(box, minX, maxX, minY, maxY) {
			return
		}
		if checkpoint.Activated {
			vector.DrawFilledRect(screen,
				float32(box.X+camX), float32(box.Y+camY),
				float32(box.W), float32(box.H),
				dim(cfg.Render.Checkpoint, 120), false)
		}
		vector.StrokeRect(screen,
			float32(box.X+camX), float32(box.Y+camY),
			float32(box.W), float32(box.H),
			1, cfg.Render.Checkpoint, false)
	})

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry).Current
	if level == nil {
		return
	}

	for _, z := range level.Zones {
		if boxHidden(z.Box, minX, maxX, minY, maxY) {
			continue
		}
		switch z.Kind {
		case leveldata.ZoneDeadly:
			vector.DrawFilledRect(screen,
				float32(z.Box.X+camX), float32(z.Box.Y+camY),
				float32(z.Box.W), float32(z.Box.H),
				dim(cfg.Render.DeadZone, 100), false)
		case leveldata.ZoneFinish:
			vector.DrawFilledRect(screen,
				float32(z.Box.X+camX), float32(z.Box.Y+camY),
				float32(z.Box.W), float32(z.Box.H),
				dim(cfg.Render.Finish, 100), false)
		}
	}
}

// dim scales a color down to the given alpha, keeping the premultiplied
// components valid.
func dim(c color.RGBA, alpha uint8) color.RGBA {
	f := float64(alpha) / 255
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: alpha,
	}
}

func boxHidden(b leveldata.Box, minX, maxX, minY, maxY float64) bool {
	return b.X+b.W < minX || b.X > maxX || b.Y+b.H < minY || b.Y > maxY
}

func triangleHidden(t leveldata.Triangle, minX, maxX, minY, maxY float64) bool {
	lo := gamemath.Vec2{
		X: min3f(t.A.X, t.B.X, t.C.X),
		Y: min3f(t.A.Y, t.B.Y, t.C.Y),
	}
	hi := gamemath.Vec2{
		X: max3f(t.A.X, t.B.X, t.C.X),
		Y: max3f(t.A.Y, t.B.Y, t.C.Y),
	}
	return hi.X < minX || lo.X > maxX || hi.Y < minY || lo.Y > maxY
}

func min3f(a, b, c float64) float64 {
	return min(a, min(b, c))
}

func max3f(a, b, c float64) float64 {
	return max(a, max(b, c))
}

// fillTriangle draws one solid triangle through DrawTriangles with a
// white source pixel.
func fillTriangle(dst *ebiten.Image, a, b, c gamemath.Vec2, clr color.RGBA) {
	cr := float32(clr.R) / 255
	cg := float32(clr.G) / 255
	cb := float32(clr.B) / 255
	ca := float32(clr.A) / 255

	vs := []ebiten.Vertex{
		{DstX: float32(a.X), DstY: float32(a.Y), SrcX: 1, SrcY: 1, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
		{DstX: float32(b.X), DstY: float32(b.Y), SrcX: 1, SrcY: 1, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
		{DstX: float32(c.X), DstY: float32(c.Y), SrcX: 1, SrcY: 1, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
	}
	is := []uint16{0, 1, 2}
	dst.DrawTriangles(vs, is, whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image), nil)
}
