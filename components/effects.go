package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// SquashStretchData deforms the drawn player box on jump and land. Each
// axis runs a tween from the impulse scale back to 1.
type SquashStretchData struct {
	ScaleX, ScaleY float64
	TweenX, TweenY *gween.Tween // nil when the axis is at rest
}

var SquashStretch = donburi.NewComponentType[SquashStretchData]()
