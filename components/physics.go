package components

import (
	"github.com/spindleworks/ridgerun/motion"
	"github.com/spindleworks/ridgerun/shared/gamemath"
	"github.com/spindleworks/ridgerun/world"
	"github.com/yohamta/donburi"
)

// PhysicsData is the movement state the player system integrates each
// tick. Velocity is in pixels per second; the controller sweeps it
// against the collision world and reports contacts.
type PhysicsData struct {
	Velocity   gamemath.Vec2
	Controller *motion.Controller
	Collider   *world.Collider

	// Wall slide bookkeeping
	WallDir           int     // -1 wall on the left, +1 on the right, 0 not sliding
	TimeToWallUnstick float64 // seconds of held away-input before stick releases
}

var Physics = donburi.NewComponentType[PhysicsData]()
