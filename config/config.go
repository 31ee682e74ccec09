package config

import (
	"image/color"
	"time"

	"github.com/yohamta/donburi/ecs"
)

// CharacterConfig contains movement tuning for the controllable character
type CharacterConfig struct {
	// Movement
	MoveSpeed      float64
	JumpForce      float64
	FallMultiplier float64

	// Dash
	DashSpeed    float64
	DashTime     time.Duration
	DashManaCost float64

	// Ground check distance below the character's feet
	GroundCheck float64

	// Dimensions
	CollisionWidth  float64
	CollisionHeight float64
}

// CombatConfig contains melee attack values
type CombatConfig struct {
	// AttackRate is attacks per second. The cooldown it produces is
	// replaced by AttackLock on every attack that actually fires.
	AttackRate  float64
	AttackLock  time.Duration
	UnlockDelay time.Duration

	Attack1Damage float64
	Attack2Damage float64

	// Hit detection
	AttackRadius  float64
	AnchorOffsetX float64
	AnchorOffsetY float64
}

// ResourceConfig contains health and mana pool values
type ResourceConfig struct {
	MaxHealth     float64
	MaxMana       float64
	ManaRegenRate float64 // mana per second
}

// LifecycleConfig contains damage, immunity and restart timings
type LifecycleConfig struct {
	ImmunityTime  time.Duration
	FlashDuration time.Duration
	RestartDelay  time.Duration
}

// CloneConfig contains the teleport marker visual
type CloneConfig struct {
	Alpha  float64
	ScaleX float64
	ScaleY float64
}

// PhysicsConfig contains the host physics values
type PhysicsConfig struct {
	Gravity      float64 // units per second squared, positive is down
	MaxFallSpeed float64
	Knockback    float64 // horizontal speed given to enemies when struck
	Friction     float64 // enemy horizontal deceleration
	CellSize     int     // resolv space cell size
}

// EnemyConfig contains default values for hostiles spawned from a level
type EnemyConfig struct {
	Health          float64
	ContactDamage   float64
	CollisionWidth  float64
	CollisionHeight float64
}

// Config holds general game configuration
type Config struct {
	Width    int
	Height   int
	TickRate int
}

// Layers used for donburi ecs renderers
const (
	LayerDefault ecs.LayerID = iota
	LayerForeground
)

// Global configuration instances
var C *Config
var Character CharacterConfig
var Combat CombatConfig
var Resources ResourceConfig
var Lifecycle LifecycleConfig
var Clone CloneConfig
var Physics PhysicsConfig
var Enemy EnemyConfig
var Debug DebugConfig

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay bool // draw attack radius and ground check
	Verbose bool // development logger
}

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Green        = color.RGBA{R: 40, G: 220, B: 40, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Gray         = color.RGBA{R: 90, G: 90, B: 100, A: 255}
	DarkGray     = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	Reset()
}

// Reset restores every configuration group to its default values.
func Reset() {
	C = &Config{
		Width:    640,
		Height:   360,
		TickRate: 60,
	}

	Character = CharacterConfig{
		MoveSpeed:      150.0,
		JumpForce:      330.0,
		FallMultiplier: 2.5,

		DashSpeed:    420.0,
		DashTime:     200 * time.Millisecond,
		DashManaCost: 70,

		GroundCheck: 0.1,

		CollisionWidth:  16,
		CollisionHeight: 32,
	}

	Combat = CombatConfig{
		AttackRate:  2,
		AttackLock:  6 * time.Second,
		UnlockDelay: 400 * time.Millisecond,

		Attack1Damage: 34,
		Attack2Damage: 20,

		AttackRadius:  14,
		AnchorOffsetX: 14,
		AnchorOffsetY: 0,
	}

	Resources = ResourceConfig{
		MaxHealth:     100,
		MaxMana:       100,
		ManaRegenRate: 1,
	}

	Lifecycle = LifecycleConfig{
		ImmunityTime:  time.Second,
		FlashDuration: 100 * time.Millisecond,
		RestartDelay:  2 * time.Second,
	}

	Clone = CloneConfig{
		Alpha:  0.7,
		ScaleX: 2.015748,
		ScaleY: 2.295006,
	}

	Physics = PhysicsConfig{
		Gravity:      980,
		MaxFallSpeed: 600,
		Knockback:    60,
		Friction:     240,
		CellSize:     16,
	}

	Enemy = EnemyConfig{
		Health:          100,
		ContactDamage:   25,
		CollisionWidth:  16,
		CollisionHeight: 24,
	}

	Debug = DebugConfig{}
}

// TickRate is the configured simulation rate in ticks per second.
func TickRate() int {
	if C == nil || C.TickRate <= 0 {
		return 60
	}
	return C.TickRate
}

// TickInterval is the fixed simulation step for the configured tick rate,
// truncated to the nanosecond. The clock steps by tick count instead.
func TickInterval() time.Duration {
	if C == nil || C.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(C.TickRate)
}
