package systems

import (
	"github.com/spindleworks/ridgerun/components"
	"github.com/spindleworks/ridgerun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects mirrors the player's box into its trigger object, then
// refreshes cell registration for every object in the space.
func UpdateObjects(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		bounds := components.Physics.Get(e).Controller.Bounds()
		obj.X = bounds.Min.X
		obj.Y = bounds.Min.Y
	})

	components.Object.Each(ecs.World, func(e *donburi.Entry) {
		components.Object.Get(e).Update()
	})
}
