package systems

import (
	"testing"

	"github.com/automoto/shadowstep/components"
	cfg "github.com/automoto/shadowstep/config"
	"github.com/automoto/shadowstep/input"
	"github.com/automoto/shadowstep/tags"
	"github.com/yohamta/donburi"
)

func markerCount(w *testWorld) int {
	n := 0
	tags.Marker.Each(w.ecs.World, func(*donburi.Entry) { n++ })
	return n
}

func TestPlaceMarkerAndTeleport(t *testing.T) {
	w := newTestWorld(t, flatLevel(), noRegen)
	startX, startY := w.obj().X, w.obj().Y

	w.press(cfg.ActionTeleport)
	clone := components.Clone.Get(w.character)
	if !clone.Placed() || markerCount(w) != 1 {
		t.Fatalf("expected a marker to be placed")
	}
	if w.pool().CurrentMana() != 0 {
		t.Fatalf("placing the marker should drain mana, got %v", w.pool().CurrentMana())
	}
	marker := clone.Marker
	markerObj := components.Object.Get(marker)
	if markerObj.X != startX || markerObj.Y != startY {
		t.Fatalf("marker at (%v, %v), expected (%v, %v)", markerObj.X, markerObj.Y, startX, startY)
	}
	visual := components.MarkerVisual.Get(marker)
	if visual.Alpha != cfg.Clone.Alpha || visual.Layer != components.MarkerLayer {
		t.Fatalf("unexpected marker visual %+v", *visual)
	}

	for i := 0; i < 10; i++ {
		w.tick(input.Frame{Axis: 1})
	}
	if w.obj().X <= startX {
		t.Fatalf("expected to walk away from the marker")
	}

	// Teleport needs no mana
	w.press(cfg.ActionTeleport)
	if w.obj().X != startX {
		t.Fatalf("expected teleport back to %v, got %v", startX, w.obj().X)
	}
	if clone.Placed() || markerCount(w) != 0 || marker.Valid() {
		t.Fatalf("marker should be consumed by the teleport")
	}
}

func TestPlaceMarkerNeedsFullMana(t *testing.T) {
	w := newTestWorld(t, flatLevel(), noRegen)
	w.pool().SetMana(99)

	w.press(cfg.ActionTeleport)
	if components.Clone.Get(w.character).Placed() {
		t.Fatalf("marker placed with partial mana")
	}
	if w.pool().CurrentMana() != 99 {
		t.Fatalf("mana changed: %v", w.pool().CurrentMana())
	}
}

func TestMarkerFacesLikeCharacter(t *testing.T) {
	w := newTestWorld(t, flatLevel(), noRegen)

	w.tick(input.Frame{Axis: -1})
	w.press(cfg.ActionTeleport)
	marker := components.Clone.Get(w.character).Marker
	if marker == nil || !components.MarkerVisual.Get(marker).FlipX {
		t.Fatalf("expected a flipped marker when facing left")
	}
}

func TestTeleportIgnoredWhileDying(t *testing.T) {
	w := newTestWorld(t, flatLevel(), noRegen)
	w.life().Dying = true

	w.press(cfg.ActionTeleport)
	if components.Clone.Get(w.character).Placed() {
		t.Fatalf("marker placed while dying")
	}
}
