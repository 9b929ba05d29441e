package components

import "github.com/yohamta/donburi"

// LevelCompleteData stores the state of the level complete overlay
type LevelCompleteData struct {
	IsComplete bool
	Elapsed    float64 // play time in seconds, frozen when the finish fires
}

var LevelComplete = donburi.NewComponentType[LevelCompleteData]()
