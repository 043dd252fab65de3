// Package game provides the match arbiter and the main game loop.
package game

// Outcome is how a match ended.
type Outcome int

const (
	// OutcomeNone - match still running
	OutcomeNone Outcome = iota
	// OutcomeVictory - the monster was slain
	OutcomeVictory
	// OutcomeDefeat - the hunter went down
	OutcomeDefeat
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeVictory:
		return "victory"
	case OutcomeDefeat:
		return "defeat"
	default:
		return "unknown"
	}
}
