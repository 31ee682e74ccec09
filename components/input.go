package components

import (
	cfg "github.com/automoto/shadowstep/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all
// actions plus the horizontal axis in [-1, 1].
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
	Axis     float64
}

// Action returns the full ActionState for an action ID.
func (in *InputData) Action(id cfg.ActionID) ActionState {
	if id < 0 || id >= cfg.ActionCount {
		return ActionState{}
	}
	curr := in.Current[id]
	prev := in.Previous[id]
	return ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

var Input = donburi.NewComponentType[InputData]()
