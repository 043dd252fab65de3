package entity

import (
	"math"

	"github.com/samdwyer/arenahunt/internal/combat"
	"github.com/samdwyer/arenahunt/internal/gamedata"
	"github.com/samdwyer/arenahunt/internal/world"
)

// Intent is the movement input held during a tick. Up is -Z and left is -X
// in the player's local frame.
type Intent struct {
	Up, Down, Left, Right bool
	Sprint                bool
}

// Vector returns the raw local-space direction, each axis in {-1, 0, 1}.
func (i Intent) Vector() world.Vector2 {
	var v world.Vector2
	if i.Up {
		v.Z--
	}
	if i.Down {
		v.Z++
	}
	if i.Left {
		v.X--
	}
	if i.Right {
		v.X++
	}
	return v
}

// Player is the hunter.
type Player struct {
	Body
	Name       string
	Stamina    Meter
	Durability Meter
	Intent     Intent

	def       gamedata.PlayerDef
	arena     world.Arena
	hitWindow combat.Window

	moving bool

	dodging      bool
	dodgeElapsed float64
	dodgeHeading float64 // locked in when the dodge starts

	attacking     bool
	attackElapsed float64
	attackLanded  bool // at most one hit per attack instance

	flash float64
}

// NewPlayer creates a player at the definition's spawn point with full resources.
func NewPlayer(def *gamedata.PlayerDef, arena world.Arena) *Player {
	return &Player{
		Body: Body{
			Pos:    arena.Clamp(def.Spawn),
			Health: NewHealth(def.MaxHP),
		},
		Name:       def.Name,
		Stamina:    NewMeter(def.MaxStamina),
		Durability: NewMeter(def.MaxDurability),
		def:        *def,
		arena:      arena,
		hitWindow:  combat.Window{Start: def.HitWindow.Start, End: def.HitWindow.End},
	}
}

// Tick advances the player by dt seconds. target is the opponent the attack
// window is tested against.
func (p *Player) Tick(dt float64, target combat.Target) combat.Report {
	p.move(dt)
	report := p.resolveAttack(dt, target)

	if p.flash > 0 {
		p.flash = math.Max(0, p.flash-dt)
	}
	return report
}

func (p *Player) move(dt float64) {
	dir := p.Intent.Vector()
	p.moving = dir != world.Vector2{}

	speed := p.def.WalkSpeed
	if p.Intent.Sprint && p.Stamina.Value > 0 {
		speed = p.def.SprintSpeed
		p.Stamina.Add(-p.def.StaminaDrainRate * dt)
	} else {
		p.Stamina.Add(p.def.StaminaRegenRate * dt)
	}

	if p.dodging {
		p.dodgeElapsed += dt
		p.Pos = p.Pos.Add(world.Heading(p.dodgeHeading).Scale(p.def.DodgeSpeed * dt))
		if p.dodgeElapsed >= p.def.DodgeDuration {
			p.dodging = false
		}
	} else {
		// Normalise first so diagonals are not faster.
		step := dir.Normalize().Scale(speed * dt)
		p.Pos = p.Pos.Add(step.Rotate(p.Facing))
	}

	p.Pos = p.arena.Clamp(p.Pos)
}

func (p *Player) resolveAttack(dt float64, target combat.Target) combat.Report {
	var report combat.Report
	if !p.attacking {
		return report
	}

	p.attackElapsed += dt
	progress := p.attackElapsed / p.def.AttackDuration

	if !p.attackLanded && target != nil && p.hitWindow.Contains(progress) &&
		combat.InRange(p.Pos, target, p.def.AttackHitRadius) {
		report.DamageDealt = target.TakeDamage(p.def.AttackDamage)
		report.Hit = true
		p.attackLanded = true
	}

	if p.attackElapsed >= p.def.AttackDuration {
		p.attacking = false
		p.Durability.Add(-p.def.DurabilityLossPerAttack)
	}
	return report
}

// Dodge starts a dodge along the current facing. It is a no-op while already
// dodging or when stamina is below the dodge cost. Returns true if a dodge started.
func (p *Player) Dodge() bool {
	if p.dodging || p.Stamina.Value < p.def.DodgeStaminaCost {
		return false
	}
	p.Stamina.Add(-p.def.DodgeStaminaCost)
	p.dodging = true
	p.dodgeElapsed = 0
	p.dodgeHeading = p.Facing
	return true
}

// Attack starts an attack instance. It is a no-op while already attacking or
// with a broken weapon. Returns true if an attack started.
func (p *Player) Attack() bool {
	if p.attacking || p.Durability.Value <= 0 {
		return false
	}
	p.attacking = true
	p.attackElapsed = 0
	p.attackLanded = false
	return true
}

// Repair restores weapon durability to full. There is no cost or cooldown.
func (p *Player) Repair() {
	p.Durability.Fill()
}

// Turn adds delta radians to the facing. The angle is not wrapped.
func (p *Player) Turn(delta float64) {
	p.Facing += delta
}

// TakeDamage reduces HP and starts the damage flash. Returns actual damage taken.
func (p *Player) TakeDamage(amount int) int {
	actual := p.Health.TakeDamage(amount)
	p.flash = p.def.DamageFlashDuration
	return actual
}

// IsMoving returns true if any direction was held on the last tick.
func (p *Player) IsMoving() bool { return p.moving }

// IsDodging returns true during a dodge.
func (p *Player) IsDodging() bool { return p.dodging }

// IsAttacking returns true during an attack instance.
func (p *Player) IsAttacking() bool { return p.attacking }

// AttackProgress returns how far through the current attack the player is, 0 when idle.
func (p *Player) AttackProgress() float64 {
	if !p.attacking {
		return 0
	}
	return math.Min(1, p.attackElapsed/p.def.AttackDuration)
}

// FlashRemaining returns the seconds left on the damage tint.
func (p *Player) FlashRemaining() float64 { return p.flash }

// Ensure Player implements combat.Target
var _ combat.Target = (*Player)(nil)
