package archetypes

import (
	"github.com/automoto/shadowstep/components"
	cfg "github.com/automoto/shadowstep/config"
	"github.com/automoto/shadowstep/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Character = newArchetype(
		tags.Character,
		components.Character,
		components.Object,
		components.Physics,
		components.ResourcePool,
		components.Combat,
		components.Clone,
		components.Lifecycle,
		components.Animator,
		components.MaterialSink,
		components.HUD,
		components.Input,
		components.Contacts,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
		components.Physics,
	)
	Marker = newArchetype(
		tags.Marker,
		components.Object,
		components.MarkerVisual,
	).on(cfg.LayerForeground)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	RestartZone = newArchetype(
		tags.RestartZone,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Scheduler = newArchetype(
		components.Scheduler,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
)

type archetype struct {
	layer      ecs.LayerID
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		layer:      cfg.LayerDefault,
		components: cs,
	}
}

func (a *archetype) on(layer ecs.LayerID) *archetype {
	a.layer = layer
	return a
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		a.layer,
		append(a.components, cs...)...,
	))
	return e
}
