package tags

import "github.com/yohamta/donburi"

var (
	Character   = donburi.NewTag().SetName("Character")
	Wall        = donburi.NewTag().SetName("Wall")
	Enemy       = donburi.NewTag().SetName("Enemy")
	Marker      = donburi.NewTag().SetName("Marker")
	RestartZone = donburi.NewTag().SetName("RestartZone")
)

// Resolv tags for physics collision
const (
	ResolvSolid     = "solid"
	ResolvCharacter = "character"
	ResolvEnemy     = "enemy"
	ResolvMarker    = "marker"
	ResolvRestart   = "restart"
)
