// Package combat provides the shared contract for real-time damage exchange
// between the hunter and the monster.
package combat

import (
	"math"

	"github.com/samdwyer/arenahunt/internal/world"
)

// Target is anything a controller can hit. Both the player and the monster
// implement it, so each controller only sees its opponent through this view.
type Target interface {
	Position() world.Vector2
	TakeDamage(amount int) int // Returns HP actually lost
}

// Report summarises what one controller tick did to its opponent.
type Report struct {
	DamageDealt int  // HP removed from the target this tick
	Hit         bool // An attack instance connected this tick
	Roared      bool // The monster readied an attack this tick
}

// Window is a half-open fraction range [Start, End) of an action's duration.
type Window struct {
	Start, End float64
}

// Contains returns true if progress lies inside the window.
func (w Window) Contains(progress float64) bool {
	return progress >= w.Start && progress < w.End
}

// InRange returns true if target is strictly closer than radius to from.
func InRange(from world.Vector2, target Target, radius float64) bool {
	return world.Distance(from, target.Position()) < radius
}

// ScaledDamage returns floor(base + aggressiveness*multiplier).
func ScaledDamage(base, aggressiveness, multiplier float64) int {
	return int(math.Floor(base + aggressiveness*multiplier))
}
