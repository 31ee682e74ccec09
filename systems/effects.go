package systems

import (
	"github.com/automoto/shadowstep/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects advances the hit-flash fades.
func UpdateEffects(ecs *ecs.ECS) {
	dt := float32(tickSeconds(scheduler(ecs.World)))

	components.MaterialSink.Each(ecs.World, func(e *donburi.Entry) {
		mat := components.MaterialSink.Get(e)
		if mat.Fade == nil {
			return
		}
		intensity, done := mat.Fade.Update(dt)
		mat.Intensity = intensity
		if done {
			mat.Fade = nil
		}
	})
}
