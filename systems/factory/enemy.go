package factory

import (
	"github.com/automoto/shadowstep/archetypes"
	"github.com/automoto/shadowstep/components"
	cfg "github.com/automoto/shadowstep/config"
	"github.com/automoto/shadowstep/leveldata"
	"github.com/automoto/shadowstep/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns a hostile with its feet at the spawn point. Zero health
// or damage in the spawn falls back to the configured defaults.
func CreateEnemy(ecs *ecs.ECS, spawn leveldata.EnemySpawn) *donburi.Entry {
	health := spawn.Health
	if health <= 0 {
		health = cfg.Enemy.Health
	}
	damage := spawn.ContactDamage
	if damage <= 0 {
		damage = cfg.Enemy.ContactDamage
	}

	enemy := archetypes.Enemy.Spawn(ecs)

	w, h := cfg.Enemy.CollisionWidth, cfg.Enemy.CollisionHeight
	obj := resolv.NewObject(spawn.X-w/2, spawn.Y-h, w, h, tags.ResolvEnemy)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	// Combat and contact queries resolve the enemy through this reference.
	obj.Data = components.HostileRef{Entry: enemy}
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Enemy.SetValue(enemy, components.EnemyData{
		Health:        health,
		MaxHealth:     health,
		ContactDamage: damage,
	})
	components.Physics.SetValue(enemy, components.PhysicsData{
		Gravity:  cfg.Physics.Gravity,
		Friction: cfg.Physics.Friction,
	})

	return enemy
}
