package components

import (
	"github.com/automoto/shadowstep/timer"
	"github.com/yohamta/donburi"
)

// Scheduler holds the simulation clock and its pending continuations.
var Scheduler = donburi.NewComponentType[timer.Queue]()
