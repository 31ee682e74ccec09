package components

import "github.com/yohamta/donburi"

// DamageEventData is queued on a hostile when it is struck and consumed by
// the enemy system on the same tick.
type DamageEventData struct {
	Amount float64
	From   Vector
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()
