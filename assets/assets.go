package assets

import (
	"embed"
	"fmt"

	"github.com/automoto/shadowstep/leveldata"
)

//go:embed all:levels
var assetFS embed.FS

// LevelsDir is the embedded directory holding the TMX files.
const LevelsDir = "levels"

// MustLoadLevels parses every embedded level and panics if none load.
func MustLoadLevels() []*leveldata.Level {
	levels, err := LoadLevels()
	if err != nil {
		panic(fmt.Sprintf("failed to load levels: %v", err))
	}
	return levels
}

// LoadLevels parses every embedded level.
func LoadLevels() ([]*leveldata.Level, error) {
	return leveldata.LoadAll(assetFS, LevelsDir)
}
