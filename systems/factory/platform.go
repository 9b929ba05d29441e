package factory

import (
	"github.com/spindleworks/ridgerun/archetypes"
	"github.com/spindleworks/ridgerun/components"
	cfg "github.com/spindleworks/ridgerun/config"
	"github.com/spindleworks/ridgerun/motion"
	"github.com/spindleworks/ridgerun/shared/leveldata"
	"github.com/spindleworks/ridgerun/world"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlatform spawns one waypoint platform from its level
// definition. Properties the level omits fall back to the tuning
// defaults.
func CreatePlatform(ecs *ecs.ECS, w *world.World, def leveldata.Platform) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)

	bounds := motion.NewRect(def.Box.X, def.Box.Y, def.Box.W, def.Box.H)
	collider := w.AddMover(bounds, world.LayerPlatform, "", platform)

	speed := def.Speed
	if speed <= 0 {
		speed = cfg.Platform.Speed
	}
	wait := def.WaitTime
	if wait <= 0 {
		wait = cfg.Platform.WaitTime
	}
	easing := def.Ease
	if easing <= 0 {
		easing = cfg.Platform.Ease
	}

	transporter := motion.NewTransporter(w, bounds, def.Waypoints, motion.PlatformConfig{
		Speed:    speed,
		Cyclic:   def.Cyclic,
		WaitTime: wait,
		// Authored ease is an amount above linear
		EaseExponent:  easing + 1,
		PassengerMask: world.LayerRider,
		SkinWidth:     cfg.Motion.SkinWidth,
		RaySpacing:    cfg.Motion.RaySpacing,
	}, riderController, collider.MoveTo)

	components.Platform.SetValue(platform, components.PlatformData{
		Transporter: transporter,
		Collider:    collider,
	})

	return platform
}

// riderController maps passenger scan hits back to the motion
// controllers that own them.
func riderController(body any) *motion.Controller {
	c, _ := body.(*motion.Controller)
	return c
}
