package factory

import (
	"github.com/solarlune/resolv"
	"github.com/spindleworks/ridgerun/components"
	"github.com/spindleworks/ridgerun/tags"
	"github.com/yohamta/donburi/ecs"
)

// CreateDeadZone creates an invisible trigger zone that kills the
// player on touch
func CreateDeadZone(ecs *ecs.ECS, x, y, w, h float64) *resolv.Object {
	obj := resolv.NewObject(x, y, w, h, tags.ResolvDeadZone)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))

	// Add to space if it exists
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return obj
}
