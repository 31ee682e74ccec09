package components

import (
	"github.com/automoto/shadowstep/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Name  string
	Level *leveldata.Level
}

var Level = donburi.NewComponentType[LevelData]()

// ReloadRequestData asks the scene host to rebuild the current level.
type ReloadRequestData struct {
	Reason string
}

var ReloadRequest = donburi.NewComponentType[ReloadRequestData]()
