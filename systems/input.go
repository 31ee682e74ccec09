package systems

import (
	"github.com/automoto/shadowstep/components"
	cfg "github.com/automoto/shadowstep/config"
	"github.com/automoto/shadowstep/input"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateInput returns the input system for src. Each tick it steps the
// source, rolls the current pressed state into previous and polls every
// action. Must run before the motion, combat and clone systems.
func NewUpdateInput(src input.Source) func(*ecs.ECS) {
	return func(ecs *ecs.ECS) {
		if adv, ok := src.(input.Advancer); ok {
			adv.Advance()
		}

		components.Input.Each(ecs.World, func(e *donburi.Entry) {
			in := components.Input.Get(e)

			// Swap buffers: current becomes previous, then poll fresh state
			in.Previous = in.Current
			in.Current = [cfg.ActionCount]bool{}
			for id := cfg.ActionID(1); id < cfg.ActionCount; id++ {
				in.Current[id] = src.Pressed(id)
			}
			in.Axis = input.ClampAxis(src.Axis())

			if in.Action(cfg.ActionDebug).JustPressed {
				cfg.Debug.Overlay = !cfg.Debug.Overlay
			}
		})
	}
}
