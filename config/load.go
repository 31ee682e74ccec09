package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned when a loaded configuration fails validation.
var ErrInvalid = errors.New("invalid config")

// File is the YAML layout of a tuning file. Any group left out keeps the
// values it already has.
type File struct {
	Game      *Config          `yaml:"game"`
	Character *CharacterConfig `yaml:"character"`
	Combat    *CombatConfig    `yaml:"combat"`
	Resources *ResourceConfig  `yaml:"resources"`
	Lifecycle *LifecycleConfig `yaml:"lifecycle"`
	Clone     *CloneConfig     `yaml:"clone"`
	Physics   *PhysicsConfig   `yaml:"physics"`
	Enemy     *EnemyConfig     `yaml:"enemy"`
}

// LoadFile applies the overrides in the YAML file at path.
func LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config %s: %w", path, err)
	}
	defer f.Close()

	if err := Load(f); err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}
	return nil
}

// Load decodes YAML overrides from r on top of the current values and
// validates the result. On error the previous values are kept.
func Load(r io.Reader) error {
	// Decode into copies so a partial group only overrides the keys it names.
	game := *C
	character := Character
	combat := Combat
	resources := Resources
	lifecycle := Lifecycle
	clone := Clone
	physics := Physics
	enemy := Enemy

	file := File{
		Game:      &game,
		Character: &character,
		Combat:    &combat,
		Resources: &resources,
		Lifecycle: &lifecycle,
		Clone:     &clone,
		Physics:   &physics,
		Enemy:     &enemy,
	}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode yaml: %w", err)
	}

	if err := validate(&game, &character, &combat, &resources, &lifecycle, &clone, &physics); err != nil {
		return err
	}

	C = &game
	Character = character
	Combat = combat
	Resources = resources
	Lifecycle = lifecycle
	Clone = clone
	Physics = physics
	Enemy = enemy
	return nil
}

// Validate checks the current global configuration.
func Validate() error {
	return validate(C, &Character, &Combat, &Resources, &Lifecycle, &Clone, &Physics)
}

func validate(game *Config, ch *CharacterConfig, cb *CombatConfig, rs *ResourceConfig, lc *LifecycleConfig, cl *CloneConfig, ph *PhysicsConfig) error {
	switch {
	case game.TickRate <= 0:
		return fmt.Errorf("%w: game.tickrate must be positive", ErrInvalid)
	case rs.MaxHealth <= 0:
		return fmt.Errorf("%w: resources.maxhealth must be positive", ErrInvalid)
	case rs.MaxMana <= 0:
		return fmt.Errorf("%w: resources.maxmana must be positive", ErrInvalid)
	case rs.ManaRegenRate < 0:
		return fmt.Errorf("%w: resources.manaregenrate must not be negative", ErrInvalid)
	case ch.MoveSpeed < 0 || ch.DashSpeed < 0 || ch.JumpForce < 0:
		return fmt.Errorf("%w: character speeds must not be negative", ErrInvalid)
	case ch.DashTime < 0 || ch.DashManaCost < 0:
		return fmt.Errorf("%w: character dash values must not be negative", ErrInvalid)
	case cb.AttackLock < 0 || cb.UnlockDelay < 0:
		return fmt.Errorf("%w: combat durations must not be negative", ErrInvalid)
	case cb.AttackRadius < 0:
		return fmt.Errorf("%w: combat.attackradius must not be negative", ErrInvalid)
	case lc.ImmunityTime < 0 || lc.FlashDuration < 0 || lc.RestartDelay < 0:
		return fmt.Errorf("%w: lifecycle durations must not be negative", ErrInvalid)
	case cl.Alpha < 0 || cl.Alpha > 1:
		return fmt.Errorf("%w: clone.alpha must be within [0,1]", ErrInvalid)
	case ph.CellSize <= 0:
		return fmt.Errorf("%w: physics.cellsize must be positive", ErrInvalid)
	case ph.Gravity < 0 || ph.MaxFallSpeed < 0 || ph.Friction < 0:
		return fmt.Errorf("%w: physics values must not be negative", ErrInvalid)
	}
	return nil
}
