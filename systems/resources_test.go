package systems

import (
	"math"
	"testing"

	"github.com/automoto/shadowstep/components"
	cfg "github.com/automoto/shadowstep/config"
)

func TestResourcesPublishFills(t *testing.T) {
	w := newTestWorld(t, contactLevel(25))
	w.pool().SetMana(40)

	// contacts run after the resource system, so the hit shows up a tick later
	w.idle(2)
	hud := components.HUD.Get(w.character)
	if hud.HealthFill != 0.75 {
		t.Fatalf("expected health fill 0.75, got %v", hud.HealthFill)
	}
	want := (40 + 2*cfg.Resources.ManaRegenRate*cfg.TickInterval().Seconds()) / cfg.Resources.MaxMana
	if math.Abs(hud.ManaFill-want) > 1e-9 {
		t.Fatalf("expected mana fill %v, got %v", want, hud.ManaFill)
	}
}

func TestManaRegeneratesToFull(t *testing.T) {
	w := newTestWorld(t, flatLevel(), func() { cfg.Resources.ManaRegenRate = 50 })
	w.pool().ConsumeAllMana()

	w.idle(99)
	if w.pool().ManaFull() {
		t.Fatalf("mana full too early: %v", w.pool().CurrentMana())
	}
	w.idle(2)
	if !w.pool().ManaFull() || w.pool().CurrentMana() != cfg.Resources.MaxMana {
		t.Fatalf("expected full mana capped at max, got %v", w.pool().CurrentMana())
	}
}
