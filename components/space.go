package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Space is the resolv space holding every trigger volume in the scene.
var Space = donburi.NewComponentType[resolv.Space]()
