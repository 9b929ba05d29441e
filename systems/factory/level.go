package factory

import (
	"github.com/spindleworks/ridgerun/archetypes"
	"github.com/spindleworks/ridgerun/assets"
	"github.com/spindleworks/ridgerun/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateLevel(ecs *ecs.ECS) *donburi.Entry {
	return CreateLevelAtIndex(ecs, 0)
}

func CreateLevelAtIndex(ecs *ecs.ECS, levelIndex int) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)

	levels, names := assets.Loader().MustLoadLevels()

	// Clamp index to valid range
	if levelIndex < 0 || levelIndex >= len(names) {
		levelIndex = 0
	}

	levelData := &components.LevelData{
		Current: levels[names[levelIndex]],
		Index:   levelIndex,
		Names:   names,
		Levels:  levels,
	}

	components.Level.Set(level, levelData)

	return level
}
