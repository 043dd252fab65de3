package gamedata

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/arenahunt/internal/world"
)

// Tuning file names. Each may be overridden by a file of the same name in a tuning directory.
const (
	PlayerFile  = "player.yaml"
	MonsterFile = "monster.yaml"
	ArenaFile   = "arena.yaml"
)

// Phase keys used in monster.yaml.
const (
	PhaseCalm    = "calm"
	PhaseAlert   = "alert"
	PhaseEnraged = "enraged"
)

// WindowDef is a fraction range of an action's duration.
type WindowDef struct {
	Start float64 `yaml:"start"`
	End   float64 `yaml:"end"`
}

// PlayerDef defines the hunter's stats and timings.
type PlayerDef struct {
	Name          string        `yaml:"name"`
	MaxHP         int           `yaml:"max_hp"`
	MaxStamina    float64       `yaml:"max_stamina"`
	MaxDurability float64       `yaml:"max_durability"`
	Spawn         world.Vector2 `yaml:"spawn"`

	WalkSpeed        float64 `yaml:"walk_speed"`   // units per second
	SprintSpeed      float64 `yaml:"sprint_speed"` // units per second
	StaminaDrainRate float64 `yaml:"stamina_drain_rate"`
	StaminaRegenRate float64 `yaml:"stamina_regen_rate"`

	DodgeSpeed       float64 `yaml:"dodge_speed"`
	DodgeDuration    float64 `yaml:"dodge_duration"`
	DodgeStaminaCost float64 `yaml:"dodge_stamina_cost"`

	AttackDuration          float64   `yaml:"attack_duration"`
	AttackDamage            int       `yaml:"attack_damage"`
	AttackHitRadius         float64   `yaml:"attack_hit_radius"`
	HitWindow               WindowDef `yaml:"hit_window"`
	DurabilityLossPerAttack float64   `yaml:"durability_loss_per_attack"`

	DamageFlashDuration float64 `yaml:"damage_flash_duration"`
}

// PhaseDef defines how the monster behaves in one phase.
type PhaseDef struct {
	Label          string  `yaml:"label"`
	Color          string  `yaml:"color"`
	MoveSpeed      float64 `yaml:"move_speed"`
	Aggressiveness float64 `yaml:"aggressiveness"`
	AttackRange    float64 `yaml:"attack_range"` // 0 disables the roar
	Cooldown       float64 `yaml:"cooldown"`
}

// TCellColor returns the phase color, white if it cannot be parsed.
func (p *PhaseDef) TCellColor() tcell.Color {
	return ColorOr(p.Color, tcell.ColorWhite)
}

// MonsterDef defines the monster's stats and its phase table.
type MonsterDef struct {
	Name            string        `yaml:"name"`
	MaxHP           int           `yaml:"max_hp"`
	Spawn           world.Vector2 `yaml:"spawn"`
	AlertRadius     float64       `yaml:"alert_radius"`
	EnrageThreshold float64       `yaml:"enrage_threshold"` // fraction of max HP

	ContactRange         float64 `yaml:"contact_range"`
	ContactBaseDamage    float64 `yaml:"contact_base_damage"`
	AggressionMultiplier float64 `yaml:"aggression_multiplier"`
	RoarDuration         float64 `yaml:"roar_duration"`

	Phases map[string]PhaseDef `yaml:"phases"`
}

// Phase returns the definition for the named phase, or nil if not defined.
func (m *MonsterDef) Phase(name string) *PhaseDef {
	p, ok := m.Phases[name]
	if !ok {
		return nil
	}
	return &p
}

// LandmarksDef controls decorative scatter around the arena.
type LandmarksDef struct {
	Spread        float64 `yaml:"spread"`
	Trees         int     `yaml:"trees"`
	TreeClearance float64 `yaml:"tree_clearance"`
	Rocks         int     `yaml:"rocks"`
	RockClearance float64 `yaml:"rock_clearance"`
	RockMinSize   float64 `yaml:"rock_min_size"`
	RockMaxSize   float64 `yaml:"rock_max_size"`
}

// ScatterConfig converts the definition for world.Scatter.
func (l LandmarksDef) ScatterConfig() world.ScatterConfig {
	return world.ScatterConfig{
		Spread:        l.Spread,
		Trees:         l.Trees,
		TreeClearance: l.TreeClearance,
		Rocks:         l.Rocks,
		RockClearance: l.RockClearance,
		RockMinSize:   l.RockMinSize,
		RockMaxSize:   l.RockMaxSize,
	}
}

// ArenaDef defines the play area.
type ArenaDef struct {
	HalfExtent float64      `yaml:"half_extent"`
	Landmarks  LandmarksDef `yaml:"landmarks"`
}

// Arena returns the world.Arena described by the definition.
func (a ArenaDef) Arena() world.Arena {
	return world.NewArena(a.HalfExtent)
}

// Tuning bundles every definition a match needs.
type Tuning struct {
	Player  PlayerDef
	Monster MonsterDef
	Arena   ArenaDef
}

// LoadTuning loads all tuning files, preferring copies in dir when present.
// An empty dir loads the embedded defaults only.
func LoadTuning(dir string) (*Tuning, error) {
	player, err := Load[PlayerDef](dir, PlayerFile)
	if err != nil {
		return nil, err
	}
	monster, err := Load[MonsterDef](dir, MonsterFile)
	if err != nil {
		return nil, err
	}
	arena, err := Load[ArenaDef](dir, ArenaFile)
	if err != nil {
		return nil, err
	}

	t := &Tuning{Player: player, Monster: monster, Arena: arena}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning: %w", err)
	}
	return t, nil
}

// MustLoadTuning loads the embedded tuning, panicking on error.
func MustLoadTuning() *Tuning {
	t, err := LoadTuning("")
	if err != nil {
		panic(err)
	}
	return t
}

// Validate reports every value that would break the simulation's invariants.
func (t *Tuning) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	p := t.Player
	check(p.MaxHP > 0, "player max_hp must be positive, got %d", p.MaxHP)
	check(p.MaxStamina > 0, "player max_stamina must be positive, got %v", p.MaxStamina)
	check(p.MaxDurability > 0, "player max_durability must be positive, got %v", p.MaxDurability)
	check(p.WalkSpeed >= 0 && p.SprintSpeed >= 0 && p.DodgeSpeed >= 0, "player speeds must not be negative")
	check(p.StaminaDrainRate >= 0 && p.StaminaRegenRate >= 0, "player stamina rates must not be negative")
	check(p.DodgeDuration > 0, "player dodge_duration must be positive, got %v", p.DodgeDuration)
	check(p.AttackDuration > 0, "player attack_duration must be positive, got %v", p.AttackDuration)
	check(p.AttackDamage >= 0, "player attack_damage must not be negative, got %d", p.AttackDamage)
	check(p.AttackHitRadius >= 0, "player attack_hit_radius must not be negative, got %v", p.AttackHitRadius)
	check(p.DurabilityLossPerAttack >= 0,
		"player durability_loss_per_attack must not be negative, got %v", p.DurabilityLossPerAttack)
	check(p.HitWindow.Start >= 0 && p.HitWindow.Start < p.HitWindow.End && p.HitWindow.End <= 1,
		"player hit_window must satisfy 0 <= start < end <= 1, got [%v, %v)", p.HitWindow.Start, p.HitWindow.End)

	m := t.Monster
	check(m.MaxHP > 0, "monster max_hp must be positive, got %d", m.MaxHP)
	check(m.AlertRadius >= 0, "monster alert_radius must not be negative, got %v", m.AlertRadius)
	check(m.ContactRange >= 0, "monster contact_range must not be negative, got %v", m.ContactRange)
	check(m.ContactBaseDamage >= 0, "monster contact_base_damage must not be negative, got %v", m.ContactBaseDamage)
	check(m.EnrageThreshold > 0 && m.EnrageThreshold <= 1, "monster enrage_threshold must be in (0, 1], got %v", m.EnrageThreshold)
	for _, name := range []string{PhaseCalm, PhaseAlert, PhaseEnraged} {
		phase := m.Phase(name)
		if phase == nil {
			errs = append(errs, fmt.Errorf("monster phase %q is missing", name))
			continue
		}
		check(phase.MoveSpeed >= 0 && phase.Cooldown >= 0, "monster phase %q has negative speed or cooldown", name)
	}

	check(t.Arena.HalfExtent > 0, "arena half_extent must be positive, got %v", t.Arena.HalfExtent)

	return errors.Join(errs...)
}
