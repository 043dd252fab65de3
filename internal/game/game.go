package game

import (
	"context"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/samdwyer/arenahunt/internal/gamedata"
	"github.com/samdwyer/arenahunt/internal/telemetry"
	"github.com/samdwyer/arenahunt/internal/ui"
	"github.com/samdwyer/arenahunt/internal/world"
)

// Game holds the terminal, the current match and everything that outlives it.
type Game struct {
	cfg      Config
	log      *zap.Logger
	screen   *ui.Screen
	renderer *ui.Renderer

	tuning      *gamedata.Tuning
	watcher     *gamedata.Watcher
	tuningDirty bool

	landmarks []world.Landmark
	match     *Match
	input     *InputState
	running   bool
}

// New creates a new game instance. Tuning is loaded before the terminal is
// taken over so a bad file is reported on a normal stderr.
func New(cfg Config, log *zap.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}

	tuning, err := gamedata.LoadTuning(cfg.TuningDir)
	if err != nil {
		return nil, err
	}

	var watcher *gamedata.Watcher
	if cfg.WatchTuning {
		watcher, err = gamedata.NewWatcher(cfg.TuningDir)
		if err != nil {
			return nil, err
		}
	}

	screen, err := ui.NewScreen()
	if err != nil {
		if watcher != nil {
			watcher.Close()
		}
		return nil, err
	}

	return &Game{
		cfg:      cfg,
		log:      log,
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		tuning:   tuning,
		watcher:  watcher,
		input:    NewInputState(cfg.InputHold),
		running:  true,
	}, nil
}

// Run executes the main game loop until the player quits or ctx is cancelled.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")

	// Initialize game (traced)
	initCtx, initSpan := tracer.Start(ctx, "game.init")

	seed := g.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	g.landmarks = world.Scatter(initCtx, rng, g.tuning.Arena.Landmarks.ScatterConfig())

	initSpan.SetAttributes(
		attribute.Int64("game.seed", seed),
		attribute.Int("arena.landmarks", len(g.landmarks)),
		attribute.Int("game.tick_rate", g.cfg.TickRate),
	)
	initSpan.End()

	g.log.Info("game initialised",
		zap.Int64("seed", seed),
		zap.Int("landmarks", len(g.landmarks)),
		zap.Int("tick_rate", g.cfg.TickRate),
	)

	g.newMatch(ctx)

	events := g.screen.Events()
	ticker := time.NewTicker(time.Second / time.Duration(g.cfg.TickRate))
	defer ticker.Stop()

	var tuningEvents <-chan string
	var tuningErrors <-chan error
	if g.watcher != nil {
		tuningEvents = g.watcher.Events
		tuningErrors = g.watcher.Errors
	}

	last := time.Now()

	// Main game loop
	for g.running {
		select {
		case <-ctx.Done():
			g.running = false

		case ev, ok := <-events:
			if !ok {
				g.running = false
				break
			}
			g.handleEvent(ctx, ev, time.Now())

		case name := <-tuningEvents:
			g.log.Info("tuning changed, applies to next match", zap.String("file", name))
			g.tuningDirty = true

		case err := <-tuningErrors:
			g.log.Warn("tuning watcher error", zap.Error(err))

		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			g.step(dt, now)
			g.renderer.Render(BuildFrame(g.match.Snapshot(), g.landmarks, g.cfg.ViewScale))
		}
	}

	// Cleanup
	g.Close()
	return nil
}

// step advances the match by one frame. Frame spikes are clamped so a stall
// never turns into a single huge simulation step.
func (g *Game) step(dt time.Duration, now time.Time) {
	if dt > g.cfg.MaxFrameDelta {
		g.log.Debug("clamping frame delta", zap.Duration("dt", dt))
		dt = g.cfg.MaxFrameDelta
	}

	intent := g.input.Intent(now)
	g.match.SetMoveIntent(intent.Up, intent.Down, intent.Left, intent.Right)
	g.match.SetSprintHeld(intent.Sprint)
	g.match.Tick(dt.Seconds())
}

func (g *Game) newMatch(ctx context.Context) {
	if g.match != nil {
		g.match.Close()
	}
	if g.tuningDirty {
		g.reloadTuning()
	}
	g.input.Reset()
	g.match = NewMatch(ctx, g.tuning, g.log)
}

func (g *Game) reloadTuning() {
	g.tuningDirty = false
	tuning, err := gamedata.LoadTuning(g.cfg.TuningDir)
	if err != nil {
		g.log.Warn("keeping previous tuning", zap.Error(err))
		return
	}
	g.tuning = tuning
	g.log.Info("tuning reloaded", zap.String("dir", g.cfg.TuningDir))
}

// handleEvent processes a single input event.
func (g *Game) handleEvent(ctx context.Context, ev tcell.Event, now time.Time) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev, now)
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 {
			g.match.TriggerAttack()
		}
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey, now time.Time) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyUp:
		g.input.Press(DirUp, false, now)
	case tcell.KeyDown:
		g.input.Press(DirDown, false, now)
	case tcell.KeyLeft:
		g.match.SetFacingDelta(-g.cfg.TurnStep)
	case tcell.KeyRight:
		g.match.SetFacingDelta(g.cfg.TurnStep)
	case tcell.KeyEnter:
		g.match.TriggerAttack()

	case tcell.KeyRune:
		r := ev.Rune()
		if dir, sprint, ok := movementKey(r); ok {
			g.input.Press(dir, sprint, now)
			return
		}
		switch r {
		case 'q', 'Q':
			g.match.SetFacingDelta(-g.cfg.TurnStep)
		case 'e', 'E':
			g.match.SetFacingDelta(g.cfg.TurnStep)
		case 'j', 'J':
			g.match.TriggerAttack()
		case ' ':
			g.match.TriggerDodge()
		case 'r', 'R':
			g.match.TriggerRepair()
		case 'n', 'N':
			if g.match.IsOver() {
				g.newMatch(ctx)
			}
		}
	}
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.match != nil {
		g.match.Close()
	}
	if g.watcher != nil {
		g.watcher.Close()
	}
	if g.screen != nil {
		g.screen.Close()
	}
}
