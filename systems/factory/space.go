package factory

import (
	"github.com/automoto/shadowstep/archetypes"
	"github.com/automoto/shadowstep/components"
	"github.com/automoto/shadowstep/timer"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// CreateScheduler adds the simulation clock and its continuation queue.
func CreateScheduler(ecs *ecs.ECS) *donburi.Entry {
	scheduler := archetypes.Scheduler.Spawn(ecs)
	components.Scheduler.Set(scheduler, timer.NewQueue())
	return scheduler
}

// addToSpace registers obj with the level's collision space, if there is one.
func addToSpace(ecs *ecs.ECS, obj *resolv.Object) bool {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return false
	}
	components.Space.Get(spaceEntry).Add(obj)
	return true
}
