package systems

import (
	"math"
	"time"

	"github.com/automoto/shadowstep/components"
	cfg "github.com/automoto/shadowstep/config"
	"github.com/automoto/shadowstep/physics"
	"github.com/automoto/shadowstep/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdateMotion runs the character's movement steps in a fixed order: ground
// check, dash, horizontal movement, jump, extra fall gravity and facing.
// Later steps may override what earlier ones wrote.
func UpdateMotion(ecs *ecs.ECS) {
	dt := tickSeconds(scheduler(ecs.World))

	tags.Character.Each(ecs.World, func(e *donburi.Entry) {
		ch := components.Character.Get(e)
		phys := components.Physics.Get(e)
		in := components.Input.Get(e)
		anim := components.Animator.Get(e)
		obj := components.Object.Get(e)

		ch.Grounded = physics.Grounded(obj.Object, cfg.Character.GroundCheck)

		checkDash(ecs, e, ch, phys, in)
		checkMove(ch, phys, in, anim)
		checkJump(ch, phys, in, anim)
		applyExtraGravity(phys, dt)
		applyFacing(ch, anim)
	})
}

// checkDash starts a dash on a Dash press when enough mana is available.
// A press while a dash is running is ignored.
func checkDash(ecs *ecs.ECS, e *donburi.Entry, ch *components.CharacterData, phys *components.PhysicsData, in *components.InputData) {
	if !in.Action(cfg.ActionDash).JustPressed || ch.Dashing {
		return
	}
	if components.Lifecycle.Get(e).Dying {
		return
	}

	pool := components.ResourcePool.Get(e)
	cost := cfg.Character.DashManaCost
	if pool.CurrentMana() < cost {
		return
	}
	pool.SetMana(pool.CurrentMana() - cost)

	dir := ch.LookDirection
	if dir == 0 {
		dir = ch.Facing.Sign()
	}

	// The speed in effect before the dash is the one restored when it ends.
	baseSpeed := ch.MoveSpeed
	ch.Dashing = true
	ch.MoveSpeed = cfg.Character.DashSpeed
	phys.VelocityX = ch.MoveSpeed * dir

	logger.Debug("dash started",
		zap.Float64("direction", dir),
		zap.Float64("mana", pool.CurrentMana()),
		zap.Duration("duration", cfg.Character.DashTime))

	after(ecs.World, cfg.Character.DashTime, "dash.end", e, func(e *donburi.Entry, _ time.Duration) {
		ch := components.Character.Get(e)
		ch.MoveSpeed = baseSpeed
		ch.Dashing = false
		components.Physics.Get(e).VelocityX = 0
	})
}

// checkMove applies the horizontal axis while movement is free.
func checkMove(ch *components.CharacterData, phys *components.PhysicsData, in *components.InputData, anim *components.AnimatorData) {
	if ch.MovementLocked || ch.Dashing {
		return
	}

	axis := in.Axis
	ch.MoveInput = axis
	phys.VelocityX = axis * ch.MoveSpeed
	anim.SetFloat(cfg.AnimSpeed, math.Abs(axis))

	// Facing persists while the axis is centered
	switch {
	case axis > 0:
		ch.LookDirection = cfg.DirectionRight
		ch.Facing = components.FacingRight
	case axis < 0:
		ch.LookDirection = cfg.DirectionLeft
		ch.Facing = components.FacingLeft
	}
}

func checkJump(ch *components.CharacterData, phys *components.PhysicsData, in *components.InputData, anim *components.AnimatorData) {
	if !ch.Grounded || ch.MovementLocked {
		return
	}

	if in.Action(cfg.ActionJump).JustPressed {
		phys.VelocityY -= cfg.Character.JumpForce
		anim.SetBool(cfg.AnimIsJump, true)
		logger.Debug("jump", zap.Float64("velocity_y", phys.VelocityY))
		return
	}
	anim.SetBool(cfg.AnimIsJump, false)
}

// applyExtraGravity shortens the fall by adding gravity scaled by
// (FallMultiplier - 1) while the body moves downward.
func applyExtraGravity(phys *components.PhysicsData, dt float64) {
	if !phys.Falling() {
		return
	}
	phys.VelocityY += phys.Gravity * (cfg.Character.FallMultiplier - 1) * dt
}

func applyFacing(ch *components.CharacterData, anim *components.AnimatorData) {
	if ch.LookDirection == 0 {
		return
	}
	anim.FlipX = ch.Facing == components.FacingLeft
}
