package systems

import (
	"testing"
	"time"

	"github.com/automoto/shadowstep/components"
	cfg "github.com/automoto/shadowstep/config"
	"github.com/automoto/shadowstep/input"
	"github.com/automoto/shadowstep/leveldata"
	"github.com/automoto/shadowstep/systems/factory"
	"github.com/automoto/shadowstep/timer"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// testWorld runs the gameplay systems in tick order against scripted input.
type testWorld struct {
	t         *testing.T
	ecs       *ecs.ECS
	script    *input.Script
	character *donburi.Entry
}

// flatLevel is a 640x320 level with a floor at y=200 and the spawn at (100, 200).
func flatLevel(enemies ...leveldata.EnemySpawn) *leveldata.Level {
	return &leveldata.Level{
		Name:    "flat",
		Width:   640,
		Height:  320,
		Walls:   []leveldata.Rect{{X: 0, Y: 200, W: 640, H: 16}},
		Spawn:   leveldata.Point{X: 100, Y: 200},
		Enemies: enemies,
	}
}

// newTestWorld builds level with 20ms ticks. setup runs after the config is
// reset and before anything is created.
func newTestWorld(t *testing.T, level *leveldata.Level, setup ...func()) *testWorld {
	t.Helper()
	cfg.Reset()
	t.Cleanup(cfg.Reset)
	cfg.C.TickRate = 50
	for _, fn := range setup {
		fn()
	}

	script := input.NewScript()
	e := ecs.NewECS(donburi.NewWorld())
	AddGameplaySystems(e, script)

	character, err := factory.BuildLevel(e, level)
	if err != nil {
		t.Fatalf("build level: %v", err)
	}
	return &testWorld{t: t, ecs: e, script: script, character: character}
}

func (w *testWorld) tick(frames ...input.Frame) {
	for _, f := range frames {
		w.script.Push(f)
		w.ecs.Update()
	}
}

// idle runs n ticks with nothing held.
func (w *testWorld) idle(n int) {
	for i := 0; i < n; i++ {
		w.tick(input.Frame{})
	}
}

func (w *testWorld) press(actions ...cfg.ActionID) {
	w.tick(input.Frame{Held: actions})
}

// tickAt jumps the clock so that the next tick lands exactly on at.
func (w *testWorld) tickAt(at time.Duration, f input.Frame) {
	w.t.Helper()
	skip := at - w.now() - cfg.TickInterval()
	if skip < 0 {
		w.t.Fatalf("tickAt %v is less than one tick after %v", at, w.now())
	}
	w.clock().Advance(skip)
	w.tick(f)
}

func (w *testWorld) clock() *timer.Queue {
	return scheduler(w.ecs.World)
}

func (w *testWorld) now() time.Duration {
	return w.clock().Now()
}

func (w *testWorld) char() *components.CharacterData {
	return components.Character.Get(w.character)
}

func (w *testWorld) phys() *components.PhysicsData {
	return components.Physics.Get(w.character)
}

func (w *testWorld) pool() *components.ResourcePoolData {
	return components.ResourcePool.Get(w.character)
}

func (w *testWorld) life() *components.LifecycleData {
	return components.Lifecycle.Get(w.character)
}

func (w *testWorld) obj() components.ObjectData {
	return *components.Object.Get(w.character)
}

func countTriggers(anim *components.AnimatorData, name string) int {
	n := 0
	for _, t := range anim.Triggers {
		if t == name {
			n++
		}
	}
	return n
}

// moveBody teleports a collision object without running physics.
func moveBody(e *donburi.Entry, x, y float64) {
	obj := components.Object.Get(e)
	obj.X = x
	obj.Y = y
	obj.Update()
}
