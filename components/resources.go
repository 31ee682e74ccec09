package components

import (
	"math"

	"github.com/yohamta/donburi"
)

// ResourcePoolData tracks the character's health and mana.
// Mutators keep mana within [0, MaxMana]. Health is only ceiling-clamped.
type ResourcePoolData struct {
	health    float64
	maxHealth float64
	mana      float64
	maxMana   float64
	regenRate float64
}

// NewResourcePool returns a pool filled to its maximums. Negative limits are
// treated as zero.
func NewResourcePool(maxHealth, maxMana, regenRate float64) ResourcePoolData {
	maxHealth = math.Max(maxHealth, 0)
	maxMana = math.Max(maxMana, 0)
	return ResourcePoolData{
		health:    maxHealth,
		maxHealth: maxHealth,
		mana:      maxMana,
		maxMana:   maxMana,
		regenRate: math.Max(regenRate, 0),
	}
}

func (r *ResourcePoolData) CurrentMana() float64   { return r.mana }
func (r *ResourcePoolData) MaxMana() float64       { return r.maxMana }
func (r *ResourcePoolData) CurrentHealth() float64 { return r.health }
func (r *ResourcePoolData) MaxHealth() float64     { return r.maxHealth }
func (r *ResourcePoolData) RegenRate() float64     { return r.regenRate }

// SetMana replaces current mana, clamped to [0, MaxMana].
func (r *ResourcePoolData) SetMana(v float64) {
	if math.IsNaN(v) {
		return
	}
	r.mana = math.Min(math.Max(v, 0), r.maxMana)
}

// ConsumeAllMana empties the mana pool.
func (r *ResourcePoolData) ConsumeAllMana() {
	r.mana = 0
}

// ManaFull reports whether mana is at its maximum.
func (r *ResourcePoolData) ManaFull() bool {
	return r.mana >= r.maxMana
}

// ResetHealth sets health to zero. It is the restart-zone death trigger, not a heal.
func (r *ResourcePoolData) ResetHealth() {
	r.health = 0
}

// Damage subtracts amount from health and returns the result. Health may go
// negative; there is no floor clamp. Non-positive amounts are ignored.
// It only touches the pool: systems.ApplyDamage is the entry point that also
// honors immunity and starts the death sequence.
func (r *ResourcePoolData) Damage(amount float64) float64 {
	if amount > 0 {
		r.health -= amount
	}
	return r.health
}

// Control runs the per-tick upkeep: ceiling clamps, then mana regeneration
// by rate*dt capped at the maximum.
func (r *ResourcePoolData) Control(dtSeconds float64) {
	if r.health > r.maxHealth {
		r.health = r.maxHealth
	}
	if r.mana > r.maxMana {
		r.mana = r.maxMana
	}
	if dtSeconds > 0 && r.mana < r.maxMana {
		r.mana = math.Min(r.mana+r.regenRate*dtSeconds, r.maxMana)
	}
}

// HealthFill is health/maxHealth for bar widgets, within [0,1].
func (r *ResourcePoolData) HealthFill() float64 {
	return fill(r.health, r.maxHealth)
}

// ManaFill is mana/maxMana for bar widgets, within [0,1].
func (r *ResourcePoolData) ManaFill() float64 {
	return fill(r.mana, r.maxMana)
}

func fill(cur, limit float64) float64 {
	if limit <= 0 {
		return 0
	}
	return math.Min(math.Max(cur/limit, 0), 1)
}

var ResourcePool = donburi.NewComponentType[ResourcePoolData]()
