package factory

import (
	"github.com/solarlune/resolv"
	"github.com/spindleworks/ridgerun/archetypes"
	"github.com/spindleworks/ridgerun/components"
	"github.com/spindleworks/ridgerun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFinish creates the finish zone that ends the level on touch
func CreateFinish(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	finish := archetypes.Finish.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvFinish)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = finish

	components.Object.SetValue(finish, components.ObjectData{Object: obj})

	// Add to physics space
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return finish
}
