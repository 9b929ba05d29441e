package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData wraps the resolv object an entity uses for trigger overlap
// checks. Solid geometry never lives in resolv; movement collision goes
// through the raycast world.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()
