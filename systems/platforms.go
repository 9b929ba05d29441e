package systems

import (
	"github.com/spindleworks/ridgerun/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlatforms advances every waypoint platform one step. The
// transporter moves its passengers itself; its collider sync hook keeps
// the raycast world in step with the box.
func UpdatePlatforms(ecs *ecs.ECS) {
	components.Platform.Each(ecs.World, func(e *donburi.Entry) {
		components.Platform.Get(e).Transporter.Update(tickDT)
	})
}
