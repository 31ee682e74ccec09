package factory

import (
	"errors"
	"testing"

	"github.com/automoto/shadowstep/components"
	cfg "github.com/automoto/shadowstep/config"
	"github.com/automoto/shadowstep/leveldata"
	"github.com/automoto/shadowstep/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newECS() *ecs.ECS {
	return ecs.NewECS(donburi.NewWorld())
}

func TestCreateCharacterNeedsWorld(t *testing.T) {
	e := newECS()
	if _, err := CreateCharacter(e, 0, 0); !errors.Is(err, ErrNoSpace) {
		t.Fatalf("expected ErrNoSpace, got %v", err)
	}

	CreateSpace(e, 320, 320, 16, 16)
	if _, err := CreateCharacter(e, 0, 0); !errors.Is(err, ErrNoScheduler) {
		t.Fatalf("expected ErrNoScheduler, got %v", err)
	}
}

func TestCreateCharacter(t *testing.T) {
	t.Cleanup(cfg.Reset)
	e := newECS()
	spaceEntry := CreateSpace(e, 320, 320, 16, 16)
	CreateScheduler(e)

	character, err := CreateCharacter(e, 100, 200)
	if err != nil {
		t.Fatalf("create character: %v", err)
	}

	obj := components.Object.Get(character)
	w, h := cfg.Character.CollisionWidth, cfg.Character.CollisionHeight
	if obj.X != 100-w/2 || obj.Y != 200-h {
		t.Fatalf("expected feet at (100, 200), got box at (%v, %v)", obj.X, obj.Y)
	}
	if !obj.HasTags(tags.ResolvCharacter) || obj.Space != components.Space.Get(spaceEntry) {
		t.Fatalf("expected a tagged object in the level space")
	}

	pool := components.ResourcePool.Get(character)
	if pool.CurrentHealth() != cfg.Resources.MaxHealth || !pool.ManaFull() {
		t.Fatalf("expected a full pool, got health %v mana %v", pool.CurrentHealth(), pool.CurrentMana())
	}
	ch := components.Character.Get(character)
	if ch.Facing != components.FacingRight || ch.MoveSpeed != cfg.Character.MoveSpeed || ch.LookDirection != 0 {
		t.Fatalf("unexpected initial character state %+v", *ch)
	}
	combat := components.Combat.Get(character)
	if combat.Radius != cfg.Combat.AttackRadius || combat.NextAttack != 0 {
		t.Fatalf("unexpected combat state %+v", *combat)
	}
	if components.Clone.Get(character).Placed() {
		t.Fatalf("marker should start absent")
	}
	if hud := components.HUD.Get(character); hud.HealthFill != 1 || hud.ManaFill != 1 {
		t.Fatalf("expected full bars, got %+v", *hud)
	}
}

func TestCreateEnemyDefaults(t *testing.T) {
	t.Cleanup(cfg.Reset)
	e := newECS()
	CreateSpace(e, 320, 320, 16, 16)

	enemy := CreateEnemy(e, leveldata.EnemySpawn{X: 50, Y: 100})
	data := components.Enemy.Get(enemy)
	if data.Health != cfg.Enemy.Health || data.ContactDamage != cfg.Enemy.ContactDamage {
		t.Fatalf("expected defaults, got %+v", *data)
	}

	custom := CreateEnemy(e, leveldata.EnemySpawn{X: 80, Y: 100, Health: 10, ContactDamage: 5})
	ref, ok := components.Object.Get(custom).Data.(components.HostileRef)
	if !ok {
		t.Fatalf("expected the object to carry a hostile reference")
	}
	if ref.ContactDamage() != 5 || components.Enemy.Get(custom).MaxHealth != 10 {
		t.Fatalf("spawn values not applied")
	}

	ref.TakeDamage(3, components.Vector{})
	ref.TakeDamage(4, components.Vector{X: 1})
	ev := components.DamageEvent.Get(custom)
	if ev.Amount != 7 || ev.From.X != 1 {
		t.Fatalf("expected hits on one tick to merge, got %+v", *ev)
	}
}

func TestBuildLevel(t *testing.T) {
	t.Cleanup(cfg.Reset)
	level := &leveldata.Level{
		Name:         "test",
		Width:        320,
		Height:       160,
		Walls:        []leveldata.Rect{{X: 0, Y: 144, W: 320, H: 16}, {X: 0, Y: 0, W: 16, H: 144}},
		RestartZones: []leveldata.Rect{{X: 200, Y: 140, W: 40, H: 4}},
		Spawn:        leveldata.Point{X: 40, Y: 144},
		Enemies:      []leveldata.EnemySpawn{{X: 120, Y: 144}},
	}

	e := newECS()
	character, err := BuildLevel(e, level)
	if err != nil {
		t.Fatalf("build level: %v", err)
	}
	if !character.HasComponent(tags.Character) {
		t.Fatalf("expected the character entry")
	}

	count := func(tag *donburi.ComponentType[donburi.Tag]) int {
		n := 0
		tag.Each(e.World, func(*donburi.Entry) { n++ })
		return n
	}
	if count(tags.Wall) != 2 || count(tags.RestartZone) != 1 || count(tags.Enemy) != 1 {
		t.Fatalf("unexpected entity counts")
	}
	space := components.Space.Get(components.Space.MustFirst(e.World))
	if n := len(space.Objects()); n != 5 {
		t.Fatalf("expected 5 collision objects, got %d", n)
	}
	if _, ok := components.Camera.First(e.World); !ok {
		t.Fatalf("expected a camera")
	}
	levelEntry := components.Level.MustFirst(e.World)
	if components.Level.Get(levelEntry).Name != "test" {
		t.Fatalf("expected level name to be recorded")
	}

	if _, err := BuildLevel(newECS(), nil); err == nil {
		t.Fatalf("expected an error without level data")
	}
}
