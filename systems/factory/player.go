package factory

import (
	"github.com/solarlune/resolv"
	"github.com/spindleworks/ridgerun/archetypes"
	"github.com/spindleworks/ridgerun/components"
	cfg "github.com/spindleworks/ridgerun/config"
	"github.com/spindleworks/ridgerun/motion"
	"github.com/spindleworks/ridgerun/tags"
	"github.com/spindleworks/ridgerun/world"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player with its bottom-center at (x, y). The
// motion controller sweeps the box against level geometry; the rider
// collider makes platform passenger scans see the body; the resolv
// object feeds the trigger systems.
func CreatePlayer(ecs *ecs.ECS, w *world.World, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	bounds := motion.NewRect(x-cfg.Player.Width/2, y-cfg.Player.Height, cfg.Player.Width, cfg.Player.Height)
	controller := motion.NewController(w, bounds, MotionConfig())
	collider := w.AddMover(bounds, world.LayerRider, "", nil)
	collider.SetOwner(controller)

	obj := resolv.NewObject(bounds.Min.X, bounds.Min.Y, cfg.Player.Width, cfg.Player.Height)
	obj.AddTags(tags.ResolvPlayer)
	obj.Data = player
	obj.SetShape(resolv.NewRectangle(0, 0, cfg.Player.Width, cfg.Player.Height))
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	// Add to physics space
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	components.Player.SetValue(player, components.PlayerData{
		SpawnX: x,
		SpawnY: y,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Controller: controller,
		Collider:   collider,
	})
	components.SquashStretch.SetValue(player, components.SquashStretchData{
		ScaleX: 1,
		ScaleY: 1,
	})

	return player
}

// MotionConfig maps the game tuning onto the resolver config. Bodies
// collide with level geometry and platforms, never with other riders.
func MotionConfig() motion.Config {
	return motion.Config{
		SkinWidth:        cfg.Motion.SkinWidth,
		RaySpacing:       cfg.Motion.RaySpacing,
		MaxClimbAngle:    cfg.Motion.MaxClimbAngle,
		MaxDescendAngle:  cfg.Motion.MaxDescendAngle,
		SolidMask:        world.LayerSolid | world.LayerOneWay | world.LayerPlatform,
		DropThroughDelay: cfg.Motion.DropThroughDelay,
	}
}
