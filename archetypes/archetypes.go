package archetypes

import (
	"github.com/spindleworks/ridgerun/components"
	cfg "github.com/spindleworks/ridgerun/config"
	"github.com/spindleworks/ridgerun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Physics,
		components.Object,
		components.SquashStretch,
	)
	Platform = newArchetype(
		tags.Platform,
		components.Platform,
	)
	Checkpoint = newArchetype(
		tags.Checkpoint,
		components.Checkpoint,
		components.Object,
	)
	DeadZone = newArchetype(
		tags.DeadZone,
		components.Object,
	)
	Finish = newArchetype(
		tags.Finish,
		components.Object,
	)
	Level = newArchetype(
		components.Level,
	)
	Space = newArchetype(
		components.Space,
	)
	Camera = newArchetype(
		components.Camera,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
