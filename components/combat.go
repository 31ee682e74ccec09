package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// CombatData holds melee state shared by both attack variants.
type CombatData struct {
	// NextAttack is the clock time an attack must exceed to fire.
	NextAttack time.Duration

	// AnchorOffset is the local offset of the hit-detection anchor; its X is
	// mirrored by facing every tick.
	AnchorOffset Vector
	// Anchor is the world position of the hit-detection anchor.
	Anchor Vector
	Radius float64
}

var Combat = donburi.NewComponentType[CombatData]()
