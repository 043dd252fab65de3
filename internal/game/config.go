package game

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// MaxTickRate keeps the ticker interval well above zero.
const MaxTickRate = 1000

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible landmark placement.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	TickRate      int           // Simulation steps per second
	MaxFrameDelta time.Duration // Frame time above this is clamped before it reaches the simulation

	TuningDir   string // Directory whose YAML files override the embedded tuning
	WatchTuning bool   // Reload TuningDir for the next match when its files change

	// Terminals report key presses but not releases, so a press counts as
	// held for this long. Key repeat keeps it alive.
	InputHold time.Duration
	TurnStep  float64 // Radians per turn key press
	ViewScale float64 // World units per terminal column
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		TickRate:      60,
		MaxFrameDelta: 100 * time.Millisecond,
		InputHold:     600 * time.Millisecond,
		TurnStep:      0.15,
		ViewScale:     0.5,
	}
}

// ConfigFromEnv applies ARENAHUNT_* environment variables on top of DefaultConfig.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv("ARENAHUNT_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid ARENAHUNT_SEED %q: %w", v, err)
		}
		cfg.Seed = seed
	}
	if v := os.Getenv("ARENAHUNT_TICK_RATE"); v != "" {
		rate, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid ARENAHUNT_TICK_RATE %q: %w", v, err)
		}
		cfg.TickRate = rate
	}
	if v := os.Getenv("ARENAHUNT_MAX_FRAME_DELTA"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid ARENAHUNT_MAX_FRAME_DELTA %q: %w", v, err)
		}
		cfg.MaxFrameDelta = d
	}
	if v := os.Getenv("ARENAHUNT_INPUT_HOLD"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid ARENAHUNT_INPUT_HOLD %q: %w", v, err)
		}
		cfg.InputHold = d
	}
	if v := os.Getenv("ARENAHUNT_TURN_STEP"); v != "" {
		step, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid ARENAHUNT_TURN_STEP %q: %w", v, err)
		}
		cfg.TurnStep = step
	}
	if v := os.Getenv("ARENAHUNT_VIEW_SCALE"); v != "" {
		scale, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid ARENAHUNT_VIEW_SCALE %q: %w", v, err)
		}
		cfg.ViewScale = scale
	}
	cfg.TuningDir = os.Getenv("ARENAHUNT_TUNING_DIR")
	if v := os.Getenv("ARENAHUNT_WATCH_TUNING"); v != "" {
		watch, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid ARENAHUNT_WATCH_TUNING %q: %w", v, err)
		}
		cfg.WatchTuning = watch
	}

	return cfg, cfg.Validate()
}

// Validate reports options the game loop cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.TickRate <= 0 || c.TickRate > MaxTickRate {
		errs = append(errs, fmt.Errorf("tick rate must be in [1, %d], got %d", MaxTickRate, c.TickRate))
	}
	if c.MaxFrameDelta <= 0 {
		errs = append(errs, fmt.Errorf("max frame delta must be positive, got %v", c.MaxFrameDelta))
	}
	if c.InputHold <= 0 {
		errs = append(errs, fmt.Errorf("input hold must be positive, got %v", c.InputHold))
	}
	if c.ViewScale <= 0 {
		errs = append(errs, fmt.Errorf("view scale must be positive, got %v", c.ViewScale))
	}
	if c.WatchTuning && c.TuningDir == "" {
		errs = append(errs, errors.New("watching tuning requires a tuning directory"))
	}
	return errors.Join(errs...)
}
