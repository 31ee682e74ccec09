package components

import (
	"math"
	"testing"

	"github.com/solarlune/resolv"
)

func TestManaStaysInRange(t *testing.T) {
	pool := NewResourcePool(100, 100, 1)

	check := func(step string) {
		t.Helper()
		if m := pool.CurrentMana(); m < 0 || m > pool.MaxMana() {
			t.Fatalf("%s: mana %v outside [0, %v]", step, m, pool.MaxMana())
		}
	}

	for _, v := range []float64{-50, 0, 30, 100, 250, math.Inf(1), math.Inf(-1), math.NaN()} {
		pool.SetMana(v)
		check("SetMana")
	}

	pool.ConsumeAllMana()
	check("ConsumeAllMana")
	if pool.CurrentMana() != 0 {
		t.Fatalf("expected empty pool, got %v", pool.CurrentMana())
	}

	for i := 0; i < 500; i++ {
		pool.Control(0.5)
		check("Control")
	}
	if !pool.ManaFull() {
		t.Fatalf("expected regeneration to reach max, got %v", pool.CurrentMana())
	}
}

func TestSetManaClamps(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want float64
	}{
		{"negative", -5, 0},
		{"inside", 42, 42},
		{"above_max", 120, 100},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			pool := NewResourcePool(100, 100, 1)
			pool.SetMana(c.in)
			if pool.CurrentMana() != c.want {
				t.Fatalf("expected %v, got %v", c.want, pool.CurrentMana())
			}
		})
	}
}

func TestRegenerationCapped(t *testing.T) {
	pool := NewResourcePool(100, 100, 10)
	pool.SetMana(95)
	pool.Control(0.2)
	if pool.CurrentMana() != 97 {
		t.Fatalf("expected 97, got %v", pool.CurrentMana())
	}
	pool.Control(1)
	if pool.CurrentMana() != 100 {
		t.Fatalf("expected cap at 100, got %v", pool.CurrentMana())
	}
	pool.Control(-1)
	if pool.CurrentMana() != 100 {
		t.Fatalf("negative dt changed mana")
	}
}

func TestHealthHasNoFloor(t *testing.T) {
	pool := NewResourcePool(100, 100, 1)
	if got := pool.Damage(130); got != -30 {
		t.Fatalf("expected -30, got %v", got)
	}
	pool.Control(1.0 / 60)
	if pool.CurrentHealth() != -30 {
		t.Fatalf("control must only clamp the ceiling, got %v", pool.CurrentHealth())
	}
	if pool.HealthFill() != 0 {
		t.Fatalf("fill must stay within [0,1], got %v", pool.HealthFill())
	}
	if got := pool.Damage(-10); got != -30 {
		t.Fatalf("negative damage must be ignored, got %v", got)
	}

	pool = NewResourcePool(100, 100, 1)
	pool.ResetHealth()
	if pool.CurrentHealth() != 0 {
		t.Fatalf("ResetHealth should zero health, got %v", pool.CurrentHealth())
	}
}

func TestContactsEnter(t *testing.T) {
	a := resolv.NewObject(0, 0, 1, 1)
	b := resolv.NewObject(0, 0, 1, 1)
	var c ContactsData

	if got := c.Enter([]*resolv.Object{a}); len(got) != 1 || got[0] != a {
		t.Fatalf("expected a to enter")
	}
	if got := c.Enter([]*resolv.Object{a, b}); len(got) != 1 || got[0] != b {
		t.Fatalf("expected only b to enter")
	}
	c.Enter(nil)
	if got := c.Enter([]*resolv.Object{a, a}); len(got) != 1 {
		t.Fatalf("expected a to re-enter once, got %d", len(got))
	}
}
