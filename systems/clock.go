package systems

import (
	"time"

	"github.com/automoto/shadowstep/components"
	cfg "github.com/automoto/shadowstep/config"
	"github.com/automoto/shadowstep/timer"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdateClock advances simulation time by one tick. It must run first.
// While paused the clock holds and the tick length reads as zero.
func UpdateClock(ecs *ecs.ECS) {
	clock := scheduler(ecs.World)
	if clock == nil {
		return
	}
	if paused(ecs) {
		clock.Advance(0)
		return
	}
	clock.Step(cfg.TickRate())
}

// UpdateScheduled runs every continuation whose deadline has passed. It runs
// after the gameplay systems so continuations see this tick's input and state.
func UpdateScheduled(ecs *ecs.ECS) {
	clock := scheduler(ecs.World)
	if clock == nil {
		return
	}
	for _, name := range clock.Run() {
		logger.Debug("continuation ran", zap.String("name", name), zap.Duration("now", clock.Now()))
	}
}

func scheduler(w donburi.World) *timer.Queue {
	entry, ok := components.Scheduler.First(w)
	if !ok {
		return nil
	}
	return components.Scheduler.Get(entry)
}

// tickSeconds is the length of the current tick in seconds.
func tickSeconds(clock *timer.Queue) float64 {
	if clock == nil {
		return cfg.TickInterval().Seconds()
	}
	return clock.Delta().Seconds()
}

// after schedules fn on the world's clock. Continuations look their entry up
// again when they run since it may have been removed in the meantime.
func after(w donburi.World, delay time.Duration, name string, e *donburi.Entry, fn func(e *donburi.Entry, now time.Duration)) {
	clock := scheduler(w)
	if clock == nil {
		return
	}
	entity := e.Entity()
	clock.After(delay, name, func(now time.Duration) {
		if !w.Valid(entity) {
			return
		}
		fn(w.Entry(entity), now)
	})
}
