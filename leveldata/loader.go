package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// ErrNoSpawn is returned when a level has no PlayerSpawn object.
var ErrNoSpawn = errors.New("no player spawn defined in map")

// Object group names read from the TMX file.
const (
	GroupWalls        = "Walls"
	GroupPlayerSpawn  = "PlayerSpawn"
	GroupEnemySpawn   = "EnemySpawn"
	GroupRestartZones = "RestartZones"
)

// Load parses the TMX file at tmxPath within fsys. It takes an fs.FS so
// callers can pass embed.FS or os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	spawnFound := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupWalls:
			for _, o := range og.Objects {
				level.Walls = append(level.Walls, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case GroupRestartZones:
			for _, o := range og.Objects {
				level.RestartZones = append(level.RestartZones, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case GroupPlayerSpawn:
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				level.Spawn = Point{X: o.X, Y: o.Y}
				spawnFound = true
			}
		case GroupEnemySpawn:
			for _, o := range og.Objects {
				level.Enemies = append(level.Enemies, EnemySpawn{
					X:             o.X,
					Y:             o.Y,
					Health:        o.Properties.GetFloat("health"),
					ContactDamage: o.Properties.GetFloat("damage"),
				})
			}
		}
	}

	if !spawnFound {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoSpawn)
	}

	// Sort enemies left-to-right for deterministic spawn order
	sort.SliceStable(level.Enemies, func(i, j int) bool {
		return level.Enemies[i].X < level.Enemies[j].X
	})

	return level, nil
}

// LoadAll discovers the .tmx files in dir within fsys and returns them
// sorted by name.
func LoadAll(fsys fs.FS, dir string) ([]*Level, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmx files found in %s", dir)
	}
	sort.Strings(matches)

	levels := make([]*Level, 0, len(matches))
	for _, path := range matches {
		level, err := Load(fsys, path)
		if err != nil {
			return nil, err
		}
		levels = append(levels, level)
	}
	return levels, nil
}
