package systems

import (
	"math"
	"testing"
	"time"

	"github.com/automoto/shadowstep/components"
	cfg "github.com/automoto/shadowstep/config"
	"github.com/automoto/shadowstep/input"
	"github.com/automoto/shadowstep/leveldata"
	"github.com/automoto/shadowstep/tags"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// Two enemies in front of the spawn: one under the anchor, one at the edge
// of the attack radius.
func meleeLevel(health float64) *leveldata.Level {
	return flatLevel(
		leveldata.EnemySpawn{X: 122, Y: 200, Health: health},
		leveldata.EnemySpawn{X: 134, Y: 200, Health: health},
	)
}

func enemiesByX(w *testWorld) []*donburi.Entry {
	var near, far *donburi.Entry
	tags.Enemy.Each(w.ecs.World, func(e *donburi.Entry) {
		if components.Object.Get(e).CenterX() < 128 {
			near = e
		} else {
			far = e
		}
	})
	return []*donburi.Entry{near, far}
}

func enemyCount(w *testWorld) int {
	n := 0
	tags.Enemy.Each(w.ecs.World, func(*donburi.Entry) { n++ })
	return n
}

func TestAttackCooldown(t *testing.T) {
	cases := []struct {
		name   string
		offset time.Duration
		fires  bool
	}{
		{"one_second_later", time.Second, false},
		{"at_lock_end", 6 * time.Second, false},
		{"just_past_lock", 6*time.Second + time.Millisecond, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := newTestWorld(t, flatLevel())
			anim := components.Animator.Get(w.character)

			w.press(cfg.ActionAttack1)
			t0 := w.now()
			if got := components.Combat.Get(w.character).NextAttack; got != t0+cfg.Combat.AttackLock {
				t.Fatalf("expected next attack at %v, got %v", t0+cfg.Combat.AttackLock, got)
			}
			w.idle(1)

			w.tickAt(t0+c.offset, input.Frame{Held: []cfg.ActionID{cfg.ActionAttack1}})
			want := 1
			if c.fires {
				want = 2
			}
			if got := countTriggers(anim, cfg.AnimAttack1); got != want {
				t.Fatalf("expected %d attacks, got %d", want, got)
			}
		})
	}
}

func TestAttackCooldownShared(t *testing.T) {
	w := newTestWorld(t, flatLevel())
	anim := components.Animator.Get(w.character)

	w.press(cfg.ActionAttack2)
	w.idle(1)
	w.press(cfg.ActionAttack1)
	if countTriggers(anim, cfg.AnimAttack1) != 0 {
		t.Fatalf("Attack1 fired during the Attack2 lock")
	}
}

func TestBothAttacksSameTick(t *testing.T) {
	w := newTestWorld(t, flatLevel())
	anim := components.Animator.Get(w.character)

	w.press(cfg.ActionAttack1, cfg.ActionAttack2)
	if countTriggers(anim, cfg.AnimAttack1) != 1 || countTriggers(anim, cfg.AnimAttack2) != 0 {
		t.Fatalf("expected only Attack1, got triggers %v", anim.Triggers)
	}
}

func TestAttack1StrikesNearest(t *testing.T) {
	w := newTestWorld(t, meleeLevel(100))
	enemies := enemiesByX(w)

	w.press(cfg.ActionAttack1)

	near := components.Enemy.Get(enemies[0])
	far := components.Enemy.Get(enemies[1])
	if near.Health != 100-cfg.Combat.Attack1Damage || near.HitCount != 1 {
		t.Fatalf("expected nearest enemy struck once, got %+v", *near)
	}
	if far.Health != 100 || far.HitCount != 0 {
		t.Fatalf("expected far enemy untouched, got %+v", *far)
	}
	if enemies[0].HasComponent(components.DamageEvent) {
		t.Fatalf("damage event should be consumed on the same tick")
	}
	// knocked away from the attacker
	if v := components.Physics.Get(enemies[0]).VelocityX; v != cfg.Physics.Knockback {
		t.Fatalf("expected knockback %v, got %v", cfg.Physics.Knockback, v)
	}
}

func TestAttack2StrikesArea(t *testing.T) {
	w := newTestWorld(t, meleeLevel(100))
	enemies := enemiesByX(w)

	w.press(cfg.ActionAttack2)

	for i, e := range enemies {
		enemy := components.Enemy.Get(e)
		if enemy.Health != 100-cfg.Combat.Attack2Damage {
			t.Fatalf("enemy %d: expected area damage, got health %v", i, enemy.Health)
		}
	}
}

func TestAttackDefeatsEnemy(t *testing.T) {
	w := newTestWorld(t, meleeLevel(30))
	space := components.Space.Get(components.Space.MustFirst(w.ecs.World))
	before := len(space.Objects())

	w.press(cfg.ActionAttack1)
	if enemyCount(w) != 1 {
		t.Fatalf("expected one enemy left, got %d", enemyCount(w))
	}
	if len(space.Objects()) != before-1 {
		t.Fatalf("defeated enemy should leave the space")
	}
}

func TestAttackLocksThenRestoresMovement(t *testing.T) {
	w := newTestWorld(t, flatLevel())
	hold := input.Frame{Axis: 1}

	w.tick(input.Frame{Axis: 1, Held: []cfg.ActionID{cfg.ActionAttack1}})
	if !w.char().MovementLocked || w.phys().VelocityX != 0 {
		t.Fatalf("expected attack to lock and stop the character")
	}

	// unlock is due 400ms after the attack; 20 ticks at 20ms
	for i := 0; i < 19; i++ {
		w.tick(hold)
	}
	if !w.char().MovementLocked || w.phys().VelocityX != 0 {
		t.Fatalf("unlocked early at %v", w.now())
	}
	w.tick(hold)
	if w.char().MovementLocked {
		t.Fatalf("still locked at %v", w.now())
	}
	if w.phys().VelocityX != cfg.Character.MoveSpeed {
		t.Fatalf("expected held input reapplied, got %v", w.phys().VelocityX)
	}
}

func TestAnchorMirrorsWithFacing(t *testing.T) {
	w := newTestWorld(t, flatLevel())
	combat := components.Combat.Get(w.character)

	w.idle(1)
	if want := w.obj().CenterX() + cfg.Combat.AnchorOffsetX; combat.Anchor.X != want {
		t.Fatalf("expected anchor right of center at %v, got %v", want, combat.Anchor.X)
	}

	w.tick(input.Frame{Axis: -1})
	w.idle(1)
	if want := w.obj().CenterX() - cfg.Combat.AnchorOffsetX; math.Abs(combat.Anchor.X-want) > 1e-9 {
		t.Fatalf("expected anchor left of center at %v, got %v", want, combat.Anchor.X)
	}
	if want := w.obj().CenterY() + cfg.Combat.AnchorOffsetY; combat.Anchor.Y != want {
		t.Fatalf("expected anchor y %v, got %v", want, combat.Anchor.Y)
	}
}

func TestAttackLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })

	w := newTestWorld(t, meleeLevel(100))
	w.press(cfg.ActionAttack2)
	w.idle(1)
	w.press(cfg.ActionAttack2)

	attacks := logs.FilterMessage("attack").All()
	if len(attacks) != 1 {
		t.Fatalf("expected one attack entry, got %d", len(attacks))
	}
	if hits := attacks[0].ContextMap()["hits"]; hits != int64(2) {
		t.Fatalf("expected 2 hits logged, got %v", hits)
	}
	if attacks[0].Level != zapcore.InfoLevel {
		t.Fatalf("expected info level, got %v", attacks[0].Level)
	}
	if logs.FilterMessage("attack rejected").Len() != 1 {
		t.Fatalf("expected the second press to be logged as rejected")
	}
}
