package components

import "github.com/yohamta/donburi"

// AnimatorData is the animation sink. Triggers accumulate until the renderer
// consumes them; bools and floats hold their last written value.
type AnimatorData struct {
	Triggers []string
	Bools    map[string]bool
	Floats   map[string]float64
	FlipX    bool
}

func NewAnimator() AnimatorData {
	return AnimatorData{
		Bools:  map[string]bool{},
		Floats: map[string]float64{},
	}
}

func (a *AnimatorData) SetTrigger(name string) {
	a.Triggers = append(a.Triggers, name)
}

func (a *AnimatorData) SetBool(name string, v bool) {
	if a.Bools == nil {
		a.Bools = map[string]bool{}
	}
	a.Bools[name] = v
}

func (a *AnimatorData) SetFloat(name string, v float64) {
	if a.Floats == nil {
		a.Floats = map[string]float64{}
	}
	a.Floats[name] = v
}

// Triggered reports whether name was fired since the last ConsumeTriggers.
func (a *AnimatorData) Triggered(name string) bool {
	for _, t := range a.Triggers {
		if t == name {
			return true
		}
	}
	return false
}

// ConsumeTriggers returns and clears pending triggers.
func (a *AnimatorData) ConsumeTriggers() []string {
	t := a.Triggers
	a.Triggers = nil
	return t
}

var Animator = donburi.NewComponentType[AnimatorData]()
