package systems

import (
	"math"
	"time"

	"github.com/automoto/shadowstep/components"
	cfg "github.com/automoto/shadowstep/config"
	"github.com/automoto/shadowstep/physics"
	"github.com/automoto/shadowstep/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// attackVariant describes one of the two melee attacks.
type attackVariant struct {
	action  cfg.ActionID
	trigger string
	damage  func() float64
	// area strikes every target in range instead of only the nearest one
	area bool
}

var attackVariants = []attackVariant{
	{action: cfg.ActionAttack1, trigger: cfg.AnimAttack1, damage: func() float64 { return cfg.Combat.Attack1Damage }},
	{action: cfg.ActionAttack2, trigger: cfg.AnimAttack2, damage: func() float64 { return cfg.Combat.Attack2Damage }, area: true},
}

// UpdateCombat places the attack anchor and fires Attack1 or Attack2 when
// pressed and the shared cooldown has elapsed. Attack1 is checked first, so
// pressing both on the same tick fires Attack1 only.
func UpdateCombat(ecs *ecs.ECS) {
	clock := scheduler(ecs.World)
	if clock == nil {
		return
	}
	var space *resolv.Space
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space = components.Space.Get(spaceEntry)
	}

	tags.Character.Each(ecs.World, func(e *donburi.Entry) {
		combat := components.Combat.Get(e)
		updateAnchor(e, combat)

		if components.Lifecycle.Get(e).Dying {
			return
		}

		in := components.Input.Get(e)
		for _, variant := range attackVariants {
			if !in.Action(variant.action).JustPressed {
				continue
			}
			if clock.Now() <= combat.NextAttack {
				logger.Debug("attack rejected",
					zap.String("attack", variant.trigger),
					zap.Duration("now", clock.Now()),
					zap.Duration("next_attack", combat.NextAttack))
				continue
			}
			fireAttack(ecs, e, combat, space, variant, clock.Now())
		}
	})
}

// updateAnchor mirrors the anchor's horizontal offset to the facing side.
func updateAnchor(e *donburi.Entry, combat *components.CombatData) {
	obj := components.Object.Get(e)
	sign := components.Character.Get(e).Facing.Sign()
	combat.Anchor = components.Vector{
		X: obj.CenterX() + math.Abs(combat.AnchorOffset.X)*sign,
		Y: obj.CenterY() + combat.AnchorOffset.Y,
	}
}

func fireAttack(ecs *ecs.ECS, e *donburi.Entry, combat *components.CombatData, space *resolv.Space, variant attackVariant, now time.Duration) {
	ch := components.Character.Get(e)
	phys := components.Physics.Get(e)
	obj := components.Object.Get(e)

	ch.MovementLocked = true
	phys.VelocityX = 0
	phys.VelocityY = 0
	components.Animator.Get(e).SetTrigger(variant.trigger)

	// The rate-derived cooldown is replaced by the fixed attack lock.
	if rate := cfg.Combat.AttackRate; rate > 0 {
		logger.Debug("attack rate cooldown overridden",
			zap.Duration("rate_cooldown", time.Duration(float64(time.Second)/rate)),
			zap.Duration("attack_lock", cfg.Combat.AttackLock))
	}
	combat.NextAttack = now + cfg.Combat.AttackLock

	from := components.Vector{X: obj.CenterX(), Y: obj.CenterY()}
	var targets []physics.Target
	if variant.area {
		targets = physics.Overlapping(space, combat.Anchor.X, combat.Anchor.Y, combat.Radius)
	} else if target, ok := physics.Nearest(space, combat.Anchor.X, combat.Anchor.Y, combat.Radius); ok {
		targets = append(targets, target)
	}
	damage := variant.damage()
	for _, target := range targets {
		target.Damageable.TakeDamage(damage, from)
	}

	logger.Info("attack",
		zap.String("attack", variant.trigger),
		zap.Int("hits", len(targets)),
		zap.Float64("damage", damage),
		zap.Duration("next_attack", combat.NextAttack))

	after(ecs.World, cfg.Combat.UnlockDelay, "attack.unlock", e, unlockAfterAttack)
}

// unlockAfterAttack frees movement and reapplies this tick's horizontal
// input. A dying character stays locked and a running dash keeps its velocity.
func unlockAfterAttack(e *donburi.Entry, _ time.Duration) {
	if components.Lifecycle.Get(e).Dying {
		return
	}
	ch := components.Character.Get(e)
	axis := components.Input.Get(e).Axis
	if !ch.Dashing {
		ch.MoveInput = axis
		components.Physics.Get(e).VelocityX = axis * ch.MoveSpeed
	}
	ch.MovementLocked = false
}
