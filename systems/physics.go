package systems

import (
	"github.com/automoto/shadowstep/components"
	cfg "github.com/automoto/shadowstep/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates friction, gravity and velocity for every body and
// resolves the resulting movement against solids.
func UpdatePhysics(ecs *ecs.ECS) {
	dt := tickSeconds(scheduler(ecs.World))

	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		// Freeze a dying character in place during the restart delay
		if e.HasComponent(components.Lifecycle) && components.Lifecycle.Get(e).Dying {
			return
		}

		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		applyFriction(physics, dt)

		// Apply gravity
		physics.VelocityY += physics.Gravity * dt
		if physics.VelocityY > cfg.Physics.MaxFallSpeed {
			physics.VelocityY = cfg.Physics.MaxFallSpeed
		}

		resolveHorizontalCollision(physics, obj.Object, physics.VelocityX*dt)
		resolveVerticalCollision(physics, obj.Object, physics.VelocityY*dt)
		obj.Update()
	})
}

func applyFriction(physics *components.PhysicsData, dt float64) {
	if physics.Friction <= 0 {
		return
	}
	step := physics.Friction * dt
	if physics.VelocityX > step {
		physics.VelocityX -= step
	} else if physics.VelocityX < -step {
		physics.VelocityX += step
	} else {
		physics.VelocityX = 0
	}
}
