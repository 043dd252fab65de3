package combat

import (
	"testing"

	"github.com/samdwyer/arenahunt/internal/world"
)

type mockTarget struct {
	pos world.Vector2
	hp  int
}

func (m *mockTarget) Position() world.Vector2 { return m.pos }

func (m *mockTarget) TakeDamage(amount int) int {
	if amount > m.hp {
		amount = m.hp
	}
	m.hp -= amount
	return amount
}

func TestWindowContains(t *testing.T) {
	w := Window{Start: 0.4, End: 0.7}

	tests := []struct {
		progress float64
		expected bool
	}{
		{0.0, false},
		{0.39, false},
		{0.4, true},
		{0.55, true},
		{0.69, true},
		{0.7, false},
		{1.0, false},
	}

	for _, tt := range tests {
		if got := w.Contains(tt.progress); got != tt.expected {
			t.Errorf("Contains(%v) = %v, want %v", tt.progress, got, tt.expected)
		}
	}
}

func TestInRange(t *testing.T) {
	target := &mockTarget{pos: world.Vector2{X: 3, Z: 0}, hp: 10}

	if InRange(world.Vector2{}, target, 3) {
		t.Error("InRange() at exactly the radius should be false")
	}
	if !InRange(world.Vector2{X: 0.5}, target, 3) {
		t.Error("InRange() inside the radius should be true")
	}
}

func TestScaledDamage(t *testing.T) {
	tests := []struct {
		aggressiveness float64
		expected       int
	}{
		{0, 10},
		{0.5, 17}, // 17.5 floored
		{1, 25},
	}

	for _, tt := range tests {
		if got := ScaledDamage(10, tt.aggressiveness, 15); got != tt.expected {
			t.Errorf("ScaledDamage(10, %v, 15) = %d, want %d", tt.aggressiveness, got, tt.expected)
		}
	}
}
