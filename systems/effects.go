package systems

import (
	"github.com/spindleworks/ridgerun/components"
	"github.com/spindleworks/ridgerun/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects advances squash/stretch tweens back toward rest.
func UpdateEffects(ecs *ecs.ECS) {
	components.SquashStretch.Each(ecs.World, func(e *donburi.Entry) {
		ss := components.SquashStretch.Get(e)
		if ss.TweenX != nil {
			v, done := ss.TweenX.Update(float32(tickDT))
			ss.ScaleX = float64(v)
			if done {
				ss.TweenX = nil
				ss.ScaleX = 1
			}
		}
		if ss.TweenY != nil {
			v, done := ss.TweenY.Update(float32(tickDT))
			ss.ScaleY = float64(v)
			if done {
				ss.TweenY = nil
				ss.ScaleY = 1
			}
		}
	})
}

// TriggerSquashStretch kicks the entity's drawn box to the given scales
// and tweens it back to rest. Retriggering restarts the tweens.
func TriggerSquashStretch(entry *donburi.Entry, scaleX, scaleY float64) {
	if !entry.HasComponent(components.SquashStretch) {
		return
	}
	ss := components.SquashStretch.Get(entry)
	dur := float32(config.SquashStretch.Duration)
	ss.ScaleX = scaleX
	ss.ScaleY = scaleY
	ss.TweenX = gween.New(float32(scaleX), 1, dur, ease.OutQuad)
	ss.TweenY = gween.New(float32(scaleY), 1, dur, ease.OutQuad)
}
