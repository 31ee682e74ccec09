package factory

import (
	"github.com/automoto/shadowstep/archetypes"
	"github.com/automoto/shadowstep/components"
	"github.com/automoto/shadowstep/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateWall(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	// Create collision object
	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = wall

	components.Object.SetValue(wall, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return wall
}

// CreateRestartZone creates a non-solid hazard that restarts the level when entered.
func CreateRestartZone(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	zone := archetypes.RestartZone.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvRestart)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = components.RestartZone{}

	components.Object.SetValue(zone, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return zone
}
