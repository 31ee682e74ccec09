package components

import (
	"github.com/automoto/shadowstep/config"
	"github.com/yohamta/donburi"
)

// Facing is the horizontal direction the character looks in.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// Sign returns +1 for right and -1 for left.
func (f Facing) Sign() float64 {
	if f == FacingLeft {
		return config.DirectionLeft
	}
	return config.DirectionRight
}

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// CharacterData is the mutable movement state of the controllable character.
type CharacterData struct {
	Facing         Facing
	MovementLocked bool
	Grounded       bool
	Dashing        bool

	// MoveSpeed is the current horizontal speed; a dash overrides it.
	MoveSpeed float64
	// MoveInput is the last horizontal axis read while movement was free.
	MoveInput float64
	// LookDirection is -1, 0 or +1; zero until the first horizontal input.
	LookDirection float64
}

var Character = donburi.NewComponentType[CharacterData]()
