package world

import (
	"context"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/arenahunt/internal/telemetry"
)

// LandmarkKind identifies a decorative object.
type LandmarkKind rune

const (
	// LandmarkTree is a tree. Drawn as 'T'.
	LandmarkTree LandmarkKind = 'T'
	// LandmarkRock is a rock. Drawn as 'o'.
	LandmarkRock LandmarkKind = 'o'
)

// Rune returns the landmark's display character.
func (k LandmarkKind) Rune() rune {
	return rune(k)
}

// Landmark is a purely decorative object. It takes no part in the simulation.
type Landmark struct {
	Kind     LandmarkKind
	Position Vector2
	Size     float64
}

// ScatterConfig controls how landmarks are placed around the arena.
type ScatterConfig struct {
	Spread        float64 // Landmarks are placed in [-Spread, Spread] on both axes
	Trees         int     // Number of tree placement attempts
	TreeClearance float64 // Trees closer than this to the origin are skipped
	Rocks         int     // Number of rock placement attempts
	RockClearance float64 // Rocks closer than this to the origin are skipped
	RockMinSize   float64
	RockMaxSize   float64
}

// DefaultScatterConfig returns the classic layout: a clearing around the start point.
func DefaultScatterConfig() ScatterConfig {
	return ScatterConfig{
		Spread:        200,
		Trees:         20,
		TreeClearance: 30,
		Rocks:         30,
		RockClearance: 20,
		RockMinSize:   0.8,
		RockMaxSize:   2.0,
	}
}

// Scatter places landmarks using rng. The same seed always gives the same layout.
// Attempts that land inside the clearing are dropped, not retried.
func Scatter(ctx context.Context, rng *rand.Rand, cfg ScatterConfig) []Landmark {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "landmarks.scatter")
	defer span.End()

	startTime := time.Now()
	landmarks := make([]Landmark, 0, cfg.Trees+cfg.Rocks)

	for i := 0; i < cfg.Trees; i++ {
		p := randomPoint(rng, cfg.Spread)
		if p.Len() > cfg.TreeClearance {
			landmarks = append(landmarks, Landmark{Kind: LandmarkTree, Position: p, Size: 1})
		}
	}

	for i := 0; i < cfg.Rocks; i++ {
		p := randomPoint(rng, cfg.Spread)
		size := cfg.RockMinSize + rng.Float64()*(cfg.RockMaxSize-cfg.RockMinSize)
		if p.Len() > cfg.RockClearance {
			landmarks = append(landmarks, Landmark{Kind: LandmarkRock, Position: p, Size: size})
		}
	}

	span.SetAttributes(
		attribute.Int("landmarks.count", len(landmarks)),
		attribute.Float64("landmarks.spread", cfg.Spread),
		attribute.Int64("landmarks.generation_us", time.Since(startTime).Microseconds()),
	)
	return landmarks
}

// randomPoint returns a point uniformly distributed in [-spread, spread]².
func randomPoint(rng *rand.Rand, spread float64) Vector2 {
	return Vector2{
		X: (rng.Float64() - 0.5) * 2 * spread,
		Z: (rng.Float64() - 0.5) * 2 * spread,
	}
}
