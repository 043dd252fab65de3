package world

// DefaultArenaHalfExtent is the half width of the square play area.
const DefaultArenaHalfExtent = 240.0

// Arena is the square region both combatants are confined to.
type Arena struct {
	Min, Max float64
}

// NewArena creates an arena spanning [-halfExtent, halfExtent] on both axes.
func NewArena(halfExtent float64) Arena {
	return Arena{Min: -halfExtent, Max: halfExtent}
}

// Clamp returns p moved to the nearest point inside the arena.
func (a Arena) Clamp(p Vector2) Vector2 {
	return Vector2{X: clamp(p.X, a.Min, a.Max), Z: clamp(p.Z, a.Min, a.Max)}
}

// Contains returns true if p lies inside the arena, edges included.
func (a Arena) Contains(p Vector2) bool {
	return p.X >= a.Min && p.X <= a.Max && p.Z >= a.Min && p.Z <= a.Max
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
