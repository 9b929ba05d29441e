package factory

import (
	"github.com/solarlune/resolv"
	"github.com/spindleworks/ridgerun/archetypes"
	"github.com/spindleworks/ridgerun/components"
	"github.com/spindleworks/ridgerun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCheckpoint creates a checkpoint entity with a trigger volume.
// The respawn point is the bottom-center of the zone, so the player's
// feet land on whatever the zone sits on.
func CreateCheckpoint(ecs *ecs.ECS, name string, x, y, w, h float64) *donburi.Entry {
	checkpoint := archetypes.Checkpoint.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvCheckpoint)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = checkpoint

	components.Object.SetValue(checkpoint, components.ObjectData{Object: obj})
	components.Checkpoint.SetValue(checkpoint, components.CheckpointData{
		Name:      name,
		Activated: false,
		SpawnX:    x + w/2,
		SpawnY:    y + h,
	})

	// Add to physics space
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return checkpoint
}
