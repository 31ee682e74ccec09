package systems

import (
	"github.com/automoto/shadowstep/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateResources clamps and regenerates every resource pool and publishes
// the bar fill amounts.
func UpdateResources(ecs *ecs.ECS) {
	dt := tickSeconds(scheduler(ecs.World))

	components.ResourcePool.Each(ecs.World, func(e *donburi.Entry) {
		pool := components.ResourcePool.Get(e)
		pool.Control(dt)

		if e.HasComponent(components.HUD) {
			hud := components.HUD.Get(e)
			hud.HealthFill = pool.HealthFill()
			hud.ManaFill = pool.ManaFill()
		}
	})
}
