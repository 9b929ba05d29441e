package world

import (
	"github.com/spindleworks/ridgerun/motion"
	"github.com/spindleworks/ridgerun/shared/leveldata"
)

// FromLevel builds a collision world from parsed level geometry. Moving
// platforms are not part of it; their factories register movers
// against the returned world themselves.
func FromLevel(lvl *leveldata.Level) *World {
	w := New()
	for _, b := range lvl.Solids {
		w.AddSolid(motion.NewRect(b.X, b.Y, b.W, b.H), LayerSolid, nil)
	}
	for _, tri := range lvl.Slopes {
		w.AddSlope(tri.A, tri.B, tri.C, LayerSolid, nil)
	}
	for _, b := range lvl.OneWays {
		w.AddOneWay(motion.NewRect(b.X, b.Y, b.W, b.H), LayerOneWay, nil)
	}
	return w
}
