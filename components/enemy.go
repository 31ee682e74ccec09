package components

import "github.com/yohamta/donburi"

type EnemyData struct {
	Health        float64
	MaxHealth     float64
	ContactDamage float64
	// HitCount is the number of strikes taken; used for the damaged tint.
	HitCount int
}

var Enemy = donburi.NewComponentType[EnemyData]()

// Damageable is anything a melee attack can strike. It is resolved from a
// collision object's Data at query time.
type Damageable interface {
	TakeDamage(amount float64, from Vector)
}

// Hostile is anything that deals damage to the character on contact.
type Hostile interface {
	ContactDamage() float64
}

// HostileRef adapts an enemy entry to Damageable and Hostile.
type HostileRef struct {
	Entry *donburi.Entry
}

func (h HostileRef) TakeDamage(amount float64, from Vector) {
	if h.Entry == nil || !h.Entry.Valid() || amount <= 0 {
		return
	}
	if h.Entry.HasComponent(DamageEvent) {
		ev := DamageEvent.Get(h.Entry)
		ev.Amount += amount
		ev.From = from
		return
	}
	donburi.Add(h.Entry, DamageEvent, &DamageEventData{Amount: amount, From: from})
}

func (h HostileRef) ContactDamage() float64 {
	if h.Entry == nil || !h.Entry.Valid() {
		return 0
	}
	return Enemy.Get(h.Entry).ContactDamage
}

// RestartZone marks a collision object as a level hazard that restarts the level.
type RestartZone struct{}
