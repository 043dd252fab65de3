// Package entity provides the hunter and the monster and the controllers that drive them.
package entity

import "github.com/samdwyer/arenahunt/internal/world"

// Body is the shape shared by every combatant: where it is, which way it
// faces and how much health it has.
type Body struct {
	Pos    world.Vector2
	Facing float64 // radians, world-space heading
	Health Health
}

// Position returns the body's planar position.
func (b *Body) Position() world.Vector2 {
	return b.Pos
}

// IsAlive returns true if the body has HP remaining.
func (b *Body) IsAlive() bool {
	return b.Health.IsAlive()
}
