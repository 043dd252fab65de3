package game

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/samdwyer/arenahunt/internal/gamedata"
)

// newTestGame builds a Game with no terminal attached.
func newTestGame(t *testing.T) *Game {
	t.Helper()
	cfg := DefaultConfig()
	g := &Game{
		cfg:     cfg,
		log:     zap.NewNop(),
		tuning:  gamedata.MustLoadTuning(),
		input:   NewInputState(cfg.InputHold),
		running: true,
	}
	g.newMatch(context.Background())
	t.Cleanup(g.Close)
	return g
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func specialKey(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func TestGameStepClampsFrameDelta(t *testing.T) {
	tests := []struct {
		name  string
		frame time.Duration
		want  float64
	}{
		{"normal frame", 16 * time.Millisecond, 0.016},
		{"at the limit", 100 * time.Millisecond, 0.1},
		{"stall", 5 * time.Second, 0.1},
		{"huge stall", time.Hour, 0.1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t)
			g.step(tt.frame, time.Unix(1000, 0))
			if got := g.match.Elapsed(); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Elapsed() after %v frame = %v, want %v", tt.frame, got, tt.want)
			}
		})
	}
}

func TestGameStepAppliesHeldInput(t *testing.T) {
	g := newTestGame(t)
	now := time.Unix(1000, 0)

	g.handleKeyEvent(context.Background(), runeKey('W'), now)
	g.step(16*time.Millisecond, now.Add(16*time.Millisecond))

	intent := g.match.player.Intent
	if !intent.Up || !intent.Sprint {
		t.Errorf("Intent = %+v, want sprinting up", intent)
	}
	if !g.match.player.IsMoving() {
		t.Error("player should be moving")
	}

	// Released: nothing pressed for longer than the hold window.
	later := now.Add(g.cfg.InputHold + time.Second)
	g.step(16*time.Millisecond, later)
	if intent := g.match.player.Intent; intent.Up || intent.Sprint {
		t.Errorf("Intent = %+v after the hold expired, want none", intent)
	}
}

func TestGameMovementKeys(t *testing.T) {
	tests := []struct {
		name       string
		ev         *tcell.EventKey
		up, down   bool
		left       bool
		right      bool
		wantSprint bool
	}{
		{"w", runeKey('w'), true, false, false, false, false},
		{"s", runeKey('s'), false, true, false, false, false},
		{"a", runeKey('a'), false, false, true, false, false},
		{"d", runeKey('d'), false, false, false, true, false},
		{"W sprints", runeKey('W'), true, false, false, false, true},
		{"S sprints", runeKey('S'), false, true, false, false, true},
		{"A sprints", runeKey('A'), false, false, true, false, true},
		{"D sprints", runeKey('D'), false, false, false, true, true},
		{"arrow up", specialKey(tcell.KeyUp), true, false, false, false, false},
		{"arrow down", specialKey(tcell.KeyDown), false, true, false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t)
			now := time.Unix(1000, 0)
			g.handleKeyEvent(context.Background(), tt.ev, now)

			got := g.input.Intent(now)
			if got.Up != tt.up || got.Down != tt.down || got.Left != tt.left || got.Right != tt.right {
				t.Errorf("Intent() = %+v, want up=%v down=%v left=%v right=%v",
					got, tt.up, tt.down, tt.left, tt.right)
			}
			if got.Sprint != tt.wantSprint {
				t.Errorf("Sprint = %v, want %v", got.Sprint, tt.wantSprint)
			}
		})
	}
}

func TestGameTurnKeys(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		sign float64
	}{
		{"q", runeKey('q'), -1},
		{"e", runeKey('e'), 1},
		{"Q", runeKey('Q'), -1},
		{"E", runeKey('E'), 1},
		{"left arrow", specialKey(tcell.KeyLeft), -1},
		{"right arrow", specialKey(tcell.KeyRight), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t)
			g.handleKeyEvent(context.Background(), tt.ev, time.Unix(1000, 0))

			want := tt.sign * g.cfg.TurnStep
			if got := g.match.player.Facing; math.Abs(got-want) > 1e-9 {
				t.Errorf("Facing = %v, want %v", got, want)
			}
		})
	}
}

func TestGameActionKeys(t *testing.T) {
	tests := []struct {
		name  string
		ev    *tcell.EventKey
		check func(g *Game) bool
	}{
		{"space dodges", runeKey(' '), func(g *Game) bool { return g.match.player.IsDodging() }},
		{"j attacks", runeKey('j'), func(g *Game) bool { return g.match.player.IsAttacking() }},
		{"J attacks", runeKey('J'), func(g *Game) bool { return g.match.player.IsAttacking() }},
		{"enter attacks", specialKey(tcell.KeyEnter), func(g *Game) bool { return g.match.player.IsAttacking() }},
		{"r repairs", runeKey('r'), func(g *Game) bool {
			return g.match.player.Durability.Value == g.match.player.Durability.Max
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t)
			g.match.player.Durability.Set(10)

			g.handleKeyEvent(context.Background(), tt.ev, time.Unix(1000, 0))
			if !tt.check(g) {
				t.Errorf("%s had no effect", tt.name)
			}
		})
	}
}

func TestGameMouseAttacks(t *testing.T) {
	g := newTestGame(t)
	g.handleEvent(context.Background(), tcell.NewEventMouse(0, 0, tcell.Button1, tcell.ModNone), time.Unix(1000, 0))
	if !g.match.player.IsAttacking() {
		t.Error("left click should start an attack")
	}
}

func TestGameQuitKeys(t *testing.T) {
	for _, k := range []tcell.Key{tcell.KeyEscape, tcell.KeyCtrlC} {
		g := newTestGame(t)
		g.handleKeyEvent(context.Background(), specialKey(k), time.Unix(1000, 0))
		if g.running {
			t.Errorf("key %v should stop the game", k)
		}
	}
}

func TestGameNewMatchOnlyAfterGameOver(t *testing.T) {
	g := newTestGame(t)
	ctx := context.Background()
	first := g.match.ID()

	g.handleKeyEvent(ctx, runeKey('n'), time.Unix(1000, 0))
	if g.match.ID() != first {
		t.Fatal("'n' should not restart a running match")
	}

	g.match.monster.Health.Current = 0
	g.step(16*time.Millisecond, time.Unix(1000, 0))
	if !g.match.IsOver() {
		t.Fatal("match should be over once the monster is dead")
	}

	g.handleKeyEvent(ctx, runeKey('n'), time.Unix(1001, 0))
	if g.match.ID() == first {
		t.Fatal("'n' should start a new match after game over")
	}
	if g.match.IsOver() || g.match.monster.Health.Current != g.match.monster.Health.Max {
		t.Error("new match should start fresh")
	}
}

func TestGameNewMatchReleasesKeys(t *testing.T) {
	g := newTestGame(t)
	now := time.Unix(1000, 0)
	g.handleKeyEvent(context.Background(), runeKey('W'), now)

	g.match.player.Health.Current = 0
	g.step(16*time.Millisecond, now)
	g.handleKeyEvent(context.Background(), runeKey('n'), now)

	if got := g.input.Intent(now); got.Up || got.Sprint {
		t.Errorf("Intent() = %+v after a new match, want none", got)
	}
}
