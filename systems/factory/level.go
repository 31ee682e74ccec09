package factory

import (
	"fmt"

	"github.com/automoto/shadowstep/archetypes"
	"github.com/automoto/shadowstep/components"
	cfg "github.com/automoto/shadowstep/config"
	"github.com/automoto/shadowstep/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateLevel(ecs *ecs.ECS, level *leveldata.Level) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(entry, components.LevelData{
		Name:  level.Name,
		Level: level,
	})
	return entry
}

// BuildLevel populates an empty world from a level description: the level
// entry, collision space, scheduler, camera, walls, restart zones, enemies and
// finally the character. It returns the character entry.
func BuildLevel(ecs *ecs.ECS, level *leveldata.Level) (*donburi.Entry, error) {
	if level == nil {
		return nil, fmt.Errorf("build level: no level data")
	}

	CreateLevel(ecs, level)
	cell := cfg.Physics.CellSize
	CreateSpace(ecs, level.Width, level.Height, cell, cell)
	CreateScheduler(ecs)
	CreateCamera(ecs, level.Spawn.X, level.Spawn.Y)

	for _, wall := range level.Walls {
		CreateWall(ecs, wall.X, wall.Y, wall.W, wall.H)
	}
	for _, zone := range level.RestartZones {
		CreateRestartZone(ecs, zone.X, zone.Y, zone.W, zone.H)
	}
	for _, spawn := range level.Enemies {
		CreateEnemy(ecs, spawn)
	}

	character, err := CreateCharacter(ecs, level.Spawn.X, level.Spawn.Y)
	if err != nil {
		return nil, fmt.Errorf("build level %s: %w", level.Name, err)
	}
	return character, nil
}
