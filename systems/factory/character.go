package factory

import (
	"errors"

	"github.com/automoto/shadowstep/archetypes"
	"github.com/automoto/shadowstep/components"
	cfg "github.com/automoto/shadowstep/config"
	"github.com/automoto/shadowstep/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	// ErrNoSpace is returned when a body is created before the collision space.
	ErrNoSpace = errors.New("world has no collision space")
	// ErrNoScheduler is returned when the character is created before the clock.
	ErrNoScheduler = errors.New("world has no scheduler")
)

// CreateCharacter spawns the controllable character with its feet at (x, y).
// The space and scheduler must already exist.
func CreateCharacter(ecs *ecs.ECS, x, y float64) (*donburi.Entry, error) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return nil, ErrNoSpace
	}
	if _, ok := components.Scheduler.First(ecs.World); !ok {
		return nil, ErrNoScheduler
	}

	character := archetypes.Character.Spawn(ecs)

	w, h := cfg.Character.CollisionWidth, cfg.Character.CollisionHeight
	obj := resolv.NewObject(x-w/2, y-h, w, h, tags.ResolvCharacter)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = character
	components.Object.SetValue(character, components.ObjectData{Object: obj})
	components.Space.Get(spaceEntry).Add(obj)

	components.Character.SetValue(character, components.CharacterData{
		Facing:    components.FacingRight,
		MoveSpeed: cfg.Character.MoveSpeed,
	})
	components.Physics.SetValue(character, components.PhysicsData{
		Gravity: cfg.Physics.Gravity,
	})
	components.ResourcePool.SetValue(character, components.NewResourcePool(
		cfg.Resources.MaxHealth,
		cfg.Resources.MaxMana,
		cfg.Resources.ManaRegenRate,
	))

	offset := components.Vector{X: cfg.Combat.AnchorOffsetX, Y: cfg.Combat.AnchorOffsetY}
	components.Combat.SetValue(character, components.CombatData{
		AnchorOffset: offset,
		Anchor:       components.Vector{X: obj.X + w/2 + offset.X, Y: obj.Y + h/2 + offset.Y},
		Radius:       cfg.Combat.AttackRadius,
	})

	components.Animator.SetValue(character, components.NewAnimator())
	components.MaterialSink.SetValue(character, components.MaterialData{
		Current: components.MaterialOriginal,
	})
	components.HUD.SetValue(character, components.HUDData{HealthFill: 1, ManaFill: 1})

	return character, nil
}
