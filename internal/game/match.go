package game

import (
	"context"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/samdwyer/arenahunt/internal/combat"
	"github.com/samdwyer/arenahunt/internal/entity"
	"github.com/samdwyer/arenahunt/internal/gamedata"
	"github.com/samdwyer/arenahunt/internal/telemetry"
	"github.com/samdwyer/arenahunt/internal/world"
)

// Match owns one hunter and one monster and decides when the hunt is over.
// Once over, every input and tick is ignored and the state stays frozen.
type Match struct {
	id      uuid.UUID
	player  *entity.Player
	monster *entity.Monster

	over    bool
	outcome Outcome
	elapsed float64

	damageDealt int
	damageTaken int
	hits        int
	roars       int
	lastPhase   entity.MonsterPhase

	log  *zap.Logger
	span trace.Span
}

// NewMatch creates a match from the given tuning. The match span is a child
// of any span in ctx and ends when the match does.
func NewMatch(ctx context.Context, tuning *gamedata.Tuning, log *zap.Logger) *Match {
	if log == nil {
		log = zap.NewNop()
	}
	id := uuid.New()
	arena := tuning.Arena.Arena()

	m := &Match{
		id:      id,
		player:  entity.NewPlayer(&tuning.Player, arena),
		monster: entity.NewMonster(&tuning.Monster, arena),
		log:     log.With(zap.String("match_id", id.String())),
	}
	m.lastPhase = m.monster.Phase()

	_, m.span = telemetry.Tracer("game").Start(ctx, "match",
		trace.WithAttributes(
			attribute.String("match.id", id.String()),
			attribute.Int("player.max_hp", m.player.Health.Max),
			attribute.Int("monster.max_hp", m.monster.Health.Max),
			attribute.Float64("arena.half_extent", tuning.Arena.HalfExtent),
		),
	)

	m.log.Info("match started",
		zap.String("player", m.player.Name),
		zap.String("monster", m.monster.Name),
		zap.Float64("distance", m.distance()),
	)
	return m
}

// ID returns the match's unique identifier.
func (m *Match) ID() string { return m.id.String() }

// IsOver reports whether the match has ended.
func (m *Match) IsOver() bool { return m.over }

// Outcome returns how the match ended, or OutcomeNone while it runs.
func (m *Match) Outcome() Outcome { return m.outcome }

// Elapsed returns simulated seconds played.
func (m *Match) Elapsed() float64 { return m.elapsed }

// Tick advances the match by dt seconds. The hunter acts before the monster;
// if both go down in the same tick, the hunter's defeat wins.
// Negative, NaN and infinite deltas are ignored.
func (m *Match) Tick(dt float64) {
	if m.over {
		return
	}
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt < 0 {
		m.log.Warn("ignoring invalid frame delta", zap.Float64("dt", dt))
		return
	}

	m.elapsed += dt

	dealt := m.player.Tick(dt, m.monster)
	received := m.monster.Tick(dt, m.player)
	m.record(dealt, received)

	switch {
	case !m.player.IsAlive():
		m.finish(OutcomeDefeat)
	case !m.monster.IsAlive():
		m.finish(OutcomeVictory)
	}
}

func (m *Match) record(dealt, received combat.Report) {
	if dealt.Hit {
		m.hits++
		m.damageDealt += dealt.DamageDealt
		m.log.Debug("hunter hit monster",
			zap.Int("damage", dealt.DamageDealt),
			zap.Int("monster_hp", m.monster.Health.Current),
		)
		m.span.AddEvent("hunter.hit", trace.WithAttributes(
			attribute.Int("damage", dealt.DamageDealt),
			attribute.Int("monster.hp", m.monster.Health.Current),
		))
	}

	m.damageTaken += received.DamageDealt

	if received.Roared {
		m.roars++
		m.log.Debug("monster roared", zap.String("phase", m.monster.Phase().String()))
		m.span.AddEvent("monster.roar", trace.WithAttributes(
			attribute.String("phase", m.monster.Phase().String()),
		))
	}

	if phase := m.monster.Phase(); phase != m.lastPhase {
		m.log.Info("monster phase changed",
			zap.Stringer("from", m.lastPhase),
			zap.Stringer("to", phase),
			zap.Float64("distance", m.distance()),
		)
		m.span.AddEvent("monster.phase", trace.WithAttributes(
			attribute.String("from", m.lastPhase.String()),
			attribute.String("to", phase.String()),
		))
		m.lastPhase = phase
	}
}

func (m *Match) finish(outcome Outcome) {
	m.over = true
	m.outcome = outcome
	m.player.Intent = entity.Intent{}

	m.log.Info("match over",
		zap.Stringer("outcome", outcome),
		zap.Float64("elapsed", m.elapsed),
		zap.Int("damage_dealt", m.damageDealt),
		zap.Int("damage_taken", m.damageTaken),
		zap.Int("hits", m.hits),
		zap.Int("roars", m.roars),
	)
	m.endSpan(outcome.String())
}

// Close ends the match's telemetry if it is abandoned before it finishes.
func (m *Match) Close() {
	if m.span == nil {
		return
	}
	m.log.Info("match abandoned", zap.Float64("elapsed", m.elapsed))
	m.endSpan("abandoned")
}

func (m *Match) endSpan(outcome string) {
	if m.span == nil {
		return
	}
	m.span.SetAttributes(
		attribute.String("match.outcome", outcome),
		attribute.Float64("match.elapsed", m.elapsed),
		attribute.Int("match.damage_dealt", m.damageDealt),
		attribute.Int("match.damage_taken", m.damageTaken),
		attribute.Int("match.hits", m.hits),
		attribute.Int("match.roars", m.roars),
	)
	m.span.End()
	m.span = nil
}

// SetMoveIntent sets which movement directions are held.
func (m *Match) SetMoveIntent(up, down, left, right bool) {
	if m.over {
		return
	}
	m.player.Intent.Up = up
	m.player.Intent.Down = down
	m.player.Intent.Left = left
	m.player.Intent.Right = right
}

// SetSprintHeld sets whether sprint is held.
func (m *Match) SetSprintHeld(held bool) {
	if m.over {
		return
	}
	m.player.Intent.Sprint = held
}

// TriggerAttack starts an attack. It reports whether one started.
func (m *Match) TriggerAttack() bool {
	if m.over {
		return false
	}
	return m.player.Attack()
}

// TriggerDodge starts a dodge. It reports whether one started.
func (m *Match) TriggerDodge() bool {
	if m.over {
		return false
	}
	return m.player.Dodge()
}

// TriggerRepair restores weapon durability.
func (m *Match) TriggerRepair() {
	if m.over {
		return
	}
	m.player.Repair()
	m.log.Debug("weapon repaired")
}

// SetFacingDelta turns the hunter by delta radians.
func (m *Match) SetFacingDelta(delta float64) {
	if m.over {
		return
	}
	m.player.Turn(delta)
}

func (m *Match) distance() float64 {
	return world.Distance(m.player.Pos, m.monster.Pos)
}

// PlayerView is the read-only hunter state a frame is drawn from.
type PlayerView struct {
	Name           string
	Position       world.Vector2
	Facing         float64
	HP, MaxHP      int
	Stamina        float64
	MaxStamina     float64
	Durability     float64
	MaxDurability  float64
	Moving         bool
	Sprinting      bool
	Dodging        bool
	Attacking      bool
	AttackProgress float64
	Flashing       bool
}

// MonsterView is the read-only monster state a frame is drawn from.
type MonsterView struct {
	Name           string
	Position       world.Vector2
	Facing         float64
	HP, MaxHP      int
	Phase          entity.MonsterPhase
	PhaseLabel     string
	PhaseColor     tcell.Color
	Aggressiveness float64
	Roaring        bool
}

// Snapshot is a copy of everything the display needs for one frame.
type Snapshot struct {
	MatchID     string
	Player      PlayerView
	Monster     MonsterView
	Distance    float64
	Elapsed     float64
	Over        bool
	Outcome     Outcome
	DamageDealt int
	DamageTaken int
	Hits        int
	Roars       int
}

// Snapshot returns the current state for display.
func (m *Match) Snapshot() Snapshot {
	p, mo := m.player, m.monster
	phase := mo.PhaseDef()
	return Snapshot{
		MatchID: m.id.String(),
		Player: PlayerView{
			Name:           p.Name,
			Position:       p.Pos,
			Facing:         p.Facing,
			HP:             p.Health.Current,
			MaxHP:          p.Health.Max,
			Stamina:        p.Stamina.Value,
			MaxStamina:     p.Stamina.Max,
			Durability:     p.Durability.Value,
			MaxDurability:  p.Durability.Max,
			Moving:         p.IsMoving(),
			Sprinting:      p.IsMoving() && p.Intent.Sprint && p.Stamina.Value > 0,
			Dodging:        p.IsDodging(),
			Attacking:      p.IsAttacking(),
			AttackProgress: p.AttackProgress(),
			Flashing:       p.FlashRemaining() > 0,
		},
		Monster: MonsterView{
			Name:           mo.Name,
			Position:       mo.Pos,
			Facing:         mo.Facing,
			HP:             mo.Health.Current,
			MaxHP:          mo.Health.Max,
			Phase:          mo.Phase(),
			PhaseLabel:     phase.Label,
			PhaseColor:     phase.TCellColor(),
			Aggressiveness: mo.Aggressiveness(),
			Roaring:        mo.IsRoaring(),
		},
		Distance:    m.distance(),
		Elapsed:     m.elapsed,
		Over:        m.over,
		Outcome:     m.outcome,
		DamageDealt: m.damageDealt,
		DamageTaken: m.damageTaken,
		Hits:        m.hits,
		Roars:       m.roars,
	}
}
