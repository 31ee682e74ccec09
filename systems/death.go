package systems

import (
	"time"

	"github.com/automoto/shadowstep/components"
	cfg "github.com/automoto/shadowstep/config"
	"github.com/automoto/shadowstep/physics"
	"github.com/automoto/shadowstep/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

const (
	ReasonKilled      = "killed"
	ReasonRestartZone = "restart_zone"
)

// UpdateContacts reacts to the character entering restart zones and hostiles.
// Only the first tick of an overlap counts; staying inside does nothing.
func UpdateContacts(ecs *ecs.ECS) {
	tags.Character.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		contacts := components.Contacts.Get(e)

		current := physics.Contacts(obj.Object, tags.ResolvRestart, tags.ResolvEnemy)
		for _, other := range contacts.Enter(current) {
			switch data := other.Data.(type) {
			case components.RestartZone:
				enterRestartZone(ecs, e)
			case components.Hostile:
				ApplyDamage(ecs, e, data.ContactDamage())
			}
		}
	})
}

// enterRestartZone zeroes health and starts the death sequence regardless of
// immunity.
func enterRestartZone(ecs *ecs.ECS, e *donburi.Entry) {
	components.ResourcePool.Get(e).ResetHealth()
	startDeathSequence(ecs, e, ReasonRestartZone)
}

// ApplyDamage deducts damage from the character unless it is immune or
// already dying, then opens the immunity window. Health at or below zero
// starts the death sequence; otherwise the hit flash plays.
func ApplyDamage(ecs *ecs.ECS, e *donburi.Entry, damage float64) {
	life := components.Lifecycle.Get(e)
	if life.Immune || life.Dying {
		return
	}

	health := components.ResourcePool.Get(e).Damage(damage)
	life.Immune = true
	after(ecs.World, cfg.Lifecycle.ImmunityTime, "immunity.end", e, func(e *donburi.Entry, _ time.Duration) {
		components.Lifecycle.Get(e).Immune = false
	})

	logger.Info("character damaged", zap.Float64("damage", damage), zap.Float64("health", health))

	if health <= 0 {
		startDeathSequence(ecs, e, ReasonKilled)
		return
	}
	startFlash(ecs, e)
}

// startFlash swaps in the damaged material and reverts it after the flash
// duration. The tween fades the flash intensity over the same time.
func startFlash(ecs *ecs.ECS, e *donburi.Entry) {
	mat := components.MaterialSink.Get(e)
	duration := cfg.Lifecycle.FlashDuration
	mat.Current = components.MaterialDamaged
	mat.Intensity = 1
	mat.Fade = gween.New(1, 0, float32(duration.Seconds()), ease.Linear)

	after(ecs.World, duration, "flash.revert", e, func(e *donburi.Entry, _ time.Duration) {
		mat := components.MaterialSink.Get(e)
		mat.Current = components.MaterialOriginal
		mat.Intensity = 0
		mat.Fade = nil
	})
}

// startDeathSequence locks the character, plays the death trigger and asks
// for a level reload after the restart delay. Calling it again while dying
// does nothing, so a level is reloaded at most once per death.
func startDeathSequence(ecs *ecs.ECS, e *donburi.Entry, reason string) {
	life := components.Lifecycle.Get(e)
	if life.Dying {
		return
	}
	life.Dying = true

	ch := components.Character.Get(e)
	ch.MovementLocked = true
	phys := components.Physics.Get(e)
	phys.VelocityX = 0
	phys.VelocityY = 0
	components.Animator.Get(e).SetTrigger(cfg.AnimDie)

	logger.Info("character died",
		zap.String("reason", reason),
		zap.Float64("health", components.ResourcePool.Get(e).CurrentHealth()),
		zap.Duration("restart_delay", cfg.Lifecycle.RestartDelay))

	after(ecs.World, cfg.Lifecycle.RestartDelay, "level.restart", e, func(e *donburi.Entry, _ time.Duration) {
		RequestReload(ecs.World, reason)
	})
}

// RequestReload marks the level for a rebuild. Repeated requests before the
// scene consumes the first are merged.
func RequestReload(w donburi.World, reason string) {
	levelEntry, ok := components.Level.First(w)
	if !ok {
		logger.Warn("reload requested without a level", zap.String("reason", reason))
		return
	}
	if levelEntry.HasComponent(components.ReloadRequest) {
		return
	}
	donburi.Add(levelEntry, components.ReloadRequest, &components.ReloadRequestData{Reason: reason})
	logger.Info("level reload requested",
		zap.String("level", components.Level.Get(levelEntry).Name),
		zap.String("reason", reason))
}

// ReloadRequested returns the pending reload request, if any.
func ReloadRequested(w donburi.World) (components.ReloadRequestData, bool) {
	levelEntry, ok := components.Level.First(w)
	if !ok || !levelEntry.HasComponent(components.ReloadRequest) {
		return components.ReloadRequestData{}, false
	}
	return *components.ReloadRequest.Get(levelEntry), true
}
