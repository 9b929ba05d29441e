package components

import (
	"github.com/spindleworks/ridgerun/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Current          *leveldata.Level
	Index            int // position of Current in Names
	Names            []string
	Levels           map[string]*leveldata.Level
	ActiveCheckpoint *ActiveCheckpointData // last activated checkpoint for respawn
}

var Level = donburi.NewComponentType[LevelData]()
