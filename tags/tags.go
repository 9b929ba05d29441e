package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Platform   = donburi.NewTag().SetName("Platform")
	Checkpoint = donburi.NewTag().SetName("Checkpoint")
	DeadZone   = donburi.NewTag().SetName("DeadZone")
	Finish     = donburi.NewTag().SetName("Finish")
)

// Resolv tags for trigger volume queries
const (
	ResolvPlayer     = "player"
	ResolvDeadZone   = "deadzone"
	ResolvCheckpoint = "checkpoint"
	ResolvFinish     = "finish"
)
