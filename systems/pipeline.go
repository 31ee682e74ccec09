package systems

import (
	"github.com/automoto/shadowstep/input"
	"github.com/yohamta/donburi/ecs"
)

// AddGameplaySystems registers the per-tick systems in their required order:
// clock, input and pause first, then the character controller, physics,
// contacts and enemies, and finally the due continuations.
func AddGameplaySystems(e *ecs.ECS, src input.Source) {
	e.AddSystem(UpdateClock)
	e.AddSystem(NewUpdateInput(src))
	e.AddSystem(UpdatePause)

	// Game systems wrapped with the pause check
	e.AddSystem(WithGameplayChecks(UpdateMotion))
	e.AddSystem(WithGameplayChecks(UpdateCombat))
	e.AddSystem(WithGameplayChecks(UpdateClone))
	e.AddSystem(WithGameplayChecks(UpdateResources))
	e.AddSystem(WithGameplayChecks(UpdatePhysics))
	e.AddSystem(WithGameplayChecks(UpdateContacts))
	e.AddSystem(WithGameplayChecks(UpdateEnemies))
	e.AddSystem(WithGameplayChecks(UpdateScheduled))
	e.AddSystem(WithGameplayChecks(UpdateEffects))
	e.AddSystem(WithGameplayChecks(UpdateCamera))
}
