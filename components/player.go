package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	SpawnX       float64 // active respawn point: level spawn or last checkpoint
	SpawnY       float64
	Dead         bool
	RespawnTimer float64 // seconds until respawn while dead
	WasAirborne  bool    // previous tick had no ground contact, for landing detection
	FallSpeed    float64 // vertical speed carried into the latest landing
}

var Player = donburi.NewComponentType[PlayerData]()
