package systems

import (
	"github.com/spindleworks/ridgerun/components"
	"github.com/spindleworks/ridgerun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTriggers runs the player's overlap checks against the trigger
// volumes: dead zones kill, checkpoints move the respawn point, the
// finish zone completes the level.
func UpdateTriggers(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	if player.Dead {
		return
	}
	playerObj := components.Object.Get(playerEntry)

	if hitsDeadZone(e, playerObj) {
		KillPlayer(playerEntry)
		return
	}
	checkCheckpoints(e, playerEntry, playerObj)
	checkFinish(e, playerObj)
}

func hitsDeadZone(e *ecs.ECS, playerObj *components.ObjectData) bool {
	if playerObj.Check(0, 0, tags.ResolvDeadZone) != nil {
		return true
	}

	// Falling out of the level counts too.
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return false
	}
	level := components.Level.Get(levelEntry)
	if level.Current == nil {
		return false
	}
	margin := float64(level.Current.TileSize) * 4
	return playerObj.Y > float64(level.Current.PixelHeight)+margin
}

func checkCheckpoints(e *ecs.ECS, playerEntry *donburi.Entry, playerObj *components.ObjectData) {
	check := playerObj.Check(0, 0, tags.ResolvCheckpoint)
	if check == nil {
		return
	}
	checkpointObjs := check.ObjectsByTags(tags.ResolvCheckpoint)
	if len(checkpointObjs) == 0 {
		return
	}

	// Get the checkpoint entity from the resolv object
	checkpointEntry, ok := checkpointObjs[0].Data.(*donburi.Entry)
	if !ok || checkpointEntry == nil {
		return
	}
	checkpoint := components.Checkpoint.Get(checkpointEntry)
	if checkpoint.Activated {
		return
	}
	checkpoint.Activated = true

	player := components.Player.Get(playerEntry)
	player.SpawnX = checkpoint.SpawnX
	player.SpawnY = checkpoint.SpawnY

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	levelData.ActiveCheckpoint = &components.ActiveCheckpointData{
		Name:   checkpoint.Name,
		SpawnX: checkpoint.SpawnX,
		SpawnY: checkpoint.SpawnY,
	}
	if levelData.Current != nil {
		SaveGameProgress(levelData.Current.Name, levelData.ActiveCheckpoint)
	}
}

func checkFinish(e *ecs.ECS, playerObj *components.ObjectData) {
	if playerObj.Check(0, 0, tags.ResolvFinish) == nil {
		return
	}
	GetOrCreateLevelComplete(e).IsComplete = true
}
