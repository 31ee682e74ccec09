package systems

import (
	"github.com/automoto/shadowstep/components"
	cfg "github.com/automoto/shadowstep/config"
	"github.com/automoto/shadowstep/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdateEnemies applies the damage queued on enemies this tick, knocks them
// away from the attacker and removes the ones whose health ran out.
func UpdateEnemies(ecs *ecs.ECS) {
	var struck []*donburi.Entry
	for e := range components.DamageEvent.Iter(ecs.World) {
		if e.HasComponent(tags.Enemy) {
			struck = append(struck, e)
		}
	}

	var defeated []*donburi.Entry
	for _, e := range struck {
		dmg := *components.DamageEvent.Get(e)
		// Remove the damage event component so it is processed only once.
		donburi.Remove[components.DamageEventData](e, components.DamageEvent)

		enemy := components.Enemy.Get(e)
		enemy.Health -= dmg.Amount
		enemy.HitCount++

		obj := components.Object.Get(e)
		dir := cfg.DirectionRight
		if obj.CenterX() < dmg.From.X {
			dir = cfg.DirectionLeft
		}
		components.Physics.Get(e).VelocityX = dir * cfg.Physics.Knockback

		logger.Debug("enemy struck",
			zap.Float64("damage", dmg.Amount),
			zap.Float64("health", enemy.Health))

		if enemy.Health <= 0 {
			defeated = append(defeated, e)
		}
	}

	for _, e := range defeated {
		logger.Info("enemy defeated", zap.Int("hits", components.Enemy.Get(e).HitCount))
		removeBody(e)
	}
}
