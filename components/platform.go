package components

import (
	"github.com/spindleworks/ridgerun/motion"
	"github.com/spindleworks/ridgerun/world"
	"github.com/yohamta/donburi"
)

// PlatformData drives one waypoint platform. The transporter owns the
// path state and carries passengers; the collider mirrors its box into
// the raycast world so riders land on it.
type PlatformData struct {
	Transporter *motion.Transporter
	Collider    *world.Collider
}

var Platform = donburi.NewComponentType[PlatformData]()
