package components

import "github.com/yohamta/donburi"

// HUDData holds the bar fill amounts written by the resource system.
type HUDData struct {
	HealthFill float64
	ManaFill   float64
}

var HUD = donburi.NewComponentType[HUDData]()
