package systems

import (
	"math"

	"github.com/spindleworks/ridgerun/components"
	"github.com/spindleworks/ridgerun/config"
	"github.com/spindleworks/ridgerun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	// Process screen shake
	updateScreenShake(cameraEntry, camera)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	physics := components.Physics.Get(playerEntry)
	center := physics.Controller.Bounds().Center()

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.Current == nil {
		return
	}

	// Only update look-ahead when the player is moving - freeze the
	// offset when idle so the camera does not swing on every turn.
	if math.Abs(physics.Velocity.X) > config.Camera.LookAheadSpeedThreshold {
		targetLookAhead := float64(physics.Controller.State().FacingDir) * config.Camera.LookAheadDistanceX
		camera.LookAheadX += (targetLookAhead - camera.LookAheadX) * config.Camera.LookAheadSmoothing
	}

	targetX := center.X + camera.LookAheadX
	targetY := center.Y + config.Camera.VerticalOffset

	// Camera bounds: keep the level filling the screen
	screenWidth := float64(config.C.Width)
	screenHeight := float64(config.C.Height)
	levelWidth := float64(levelData.Current.PixelWidth)
	levelHeight := float64(levelData.Current.PixelHeight)

	minCameraX := screenWidth / 2
	maxCameraX := levelWidth - screenWidth/2
	minCameraY := screenHeight / 2
	maxCameraY := levelHeight - screenHeight/2

	// Levels smaller than the screen pin to their center.
	if maxCameraX < minCameraX {
		minCameraX = levelWidth / 2
		maxCameraX = minCameraX
	}
	if maxCameraY < minCameraY {
		minCameraY = levelHeight / 2
		maxCameraY = minCameraY
	}

	targetX = math.Max(minCameraX, math.Min(maxCameraX, targetX))
	targetY = math.Max(minCameraY, math.Min(maxCameraY, targetY))

	// Close on the constrained target with some smoothing.
	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}

// SnapCamera centers the camera on the player immediately, without
// smoothing. Used on scene start and respawn.
func SnapCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	center := components.Physics.Get(playerEntry).Controller.Bounds().Center()
	camera.Position.X = center.X
	camera.Position.Y = center.Y + config.Camera.VerticalOffset
	camera.LookAheadX = 0
}

// updateScreenShake applies the shake offset to the camera and retires
// the component when it completes.
func updateScreenShake(cameraEntry *donburi.Entry, camera *components.CameraData) {
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed++

	progress := float64(shake.Duration-shake.Elapsed) / float64(shake.Duration)
	if progress < 0 {
		progress = 0
	}
	currentIntensity := shake.Intensity * progress

	camera.Position.X += math.Sin(float64(shake.Elapsed)*1.1) * currentIntensity
	camera.Position.Y += math.Cos(float64(shake.Elapsed)*1.3) * currentIntensity

	if shake.Elapsed >= shake.Duration {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// TriggerScreenShake starts a screen shake effect
func TriggerScreenShake(ecs *ecs.ECS, intensity float64, duration int) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}

	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		// Only override if the new shake is stronger
		if intensity > shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Elapsed = 0
		}
	} else {
		cameraEntry.AddComponent(components.ScreenShake)
		components.ScreenShake.Set(cameraEntry, &components.ScreenShakeData{
			Intensity: intensity,
			Duration:  duration,
			Elapsed:   0,
		})
	}
}
