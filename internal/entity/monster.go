package entity

import (
	"math"

	"github.com/samdwyer/arenahunt/internal/combat"
	"github.com/samdwyer/arenahunt/internal/gamedata"
	"github.com/samdwyer/arenahunt/internal/world"
)

// MonsterPhase is the monster's behavioural mode.
type MonsterPhase int

const (
	// PhaseCalm - player far away, monster idles
	PhaseCalm MonsterPhase = iota
	// PhaseAlert - player nearby, monster closes in
	PhaseAlert
	// PhaseEnraged - monster at or below the enrage threshold
	PhaseEnraged
)

// String returns the phase key used in tuning files.
func (p MonsterPhase) String() string {
	switch p {
	case PhaseCalm:
		return gamedata.PhaseCalm
	case PhaseAlert:
		return gamedata.PhaseAlert
	case PhaseEnraged:
		return gamedata.PhaseEnraged
	default:
		return "unknown"
	}
}

// minApproachDistance stops the monster from jittering on top of the player.
const minApproachDistance = 0.1

// PhaseFor derives the phase from health and distance alone. There is no
// hysteresis: a player hovering at the alert radius makes the phase flicker.
func PhaseFor(hp, maxHP int, distance, alertRadius, enrageThreshold float64) MonsterPhase {
	if float64(hp) > enrageThreshold*float64(maxHP) {
		if distance < alertRadius {
			return PhaseAlert
		}
		return PhaseCalm
	}
	return PhaseEnraged
}

// Monster is the hunted creature.
type Monster struct {
	Body
	Name string

	def    gamedata.MonsterDef
	phases [3]gamedata.PhaseDef
	arena  world.Arena

	phase          MonsterPhase
	aggressiveness float64
	cooldown       float64
	roar           float64
}

// NewMonster creates a monster at the definition's spawn point.
func NewMonster(def *gamedata.MonsterDef, arena world.Arena) *Monster {
	m := &Monster{
		Body: Body{
			Pos:    arena.Clamp(def.Spawn),
			Health: NewHealth(def.MaxHP),
		},
		Name:  def.Name,
		def:   *def,
		arena: arena,
	}
	for _, phase := range []MonsterPhase{PhaseCalm, PhaseAlert, PhaseEnraged} {
		if d := def.Phase(phase.String()); d != nil {
			m.phases[phase] = *d
		}
	}
	return m
}

// Tick advances the monster by dt seconds against target.
func (m *Monster) Tick(dt float64, target combat.Target) combat.Report {
	var report combat.Report

	goal := target.Position()
	distance := world.Distance(m.Pos, goal)

	m.phase = PhaseFor(m.Health.Current, m.Health.Max, distance, m.def.AlertRadius, m.def.EnrageThreshold)
	m.cooldown = math.Max(0, m.cooldown-dt)
	m.roar = math.Max(0, m.roar-dt)

	phase := &m.phases[m.phase]
	m.aggressiveness = phase.Aggressiveness

	if m.phase == PhaseCalm {
		m.roar = 0
	} else {
		m.moveToward(goal, phase.MoveSpeed*dt)
		if distance < phase.AttackRange && m.cooldown <= 0 {
			m.roar = m.def.RoarDuration
			m.cooldown = phase.Cooldown
			report.Roared = true
		}
	}

	// Contact damage is applied on every tick the player stays in range,
	// independent of the roar cooldown.
	if distance < m.def.ContactRange {
		damage := combat.ScaledDamage(m.def.ContactBaseDamage, m.aggressiveness, m.def.AggressionMultiplier)
		report.DamageDealt = target.TakeDamage(damage)
		report.Hit = true
	}

	m.Pos = m.arena.Clamp(m.Pos)
	return report
}

func (m *Monster) moveToward(goal world.Vector2, step float64) {
	delta := goal.Sub(m.Pos)
	if delta.Len() <= minApproachDistance {
		return
	}
	m.Pos = m.Pos.Add(delta.Normalize().Scale(step))
	m.Facing = math.Atan2(delta.Z, delta.X)
}

// TakeDamage reduces HP and returns actual damage taken.
func (m *Monster) TakeDamage(amount int) int {
	return m.Health.TakeDamage(amount)
}

// Phase returns the phase computed on the last tick.
func (m *Monster) Phase() MonsterPhase { return m.phase }

// PhaseDef returns the tuning for the current phase.
func (m *Monster) PhaseDef() gamedata.PhaseDef { return m.phases[m.phase] }

// Aggressiveness returns the damage multiplier of the current phase.
func (m *Monster) Aggressiveness() float64 { return m.aggressiveness }

// Cooldown returns the seconds until the monster may roar again.
func (m *Monster) Cooldown() float64 { return m.cooldown }

// IsRoaring returns true while the roar effect is showing.
func (m *Monster) IsRoaring() bool { return m.roar > 0 }

// Ensure Monster implements combat.Target
var _ combat.Target = (*Monster)(nil)
