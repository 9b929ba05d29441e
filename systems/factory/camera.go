package factory

import (
	"github.com/spindleworks/ridgerun/archetypes"
	"github.com/spindleworks/ridgerun/components"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{})
}
