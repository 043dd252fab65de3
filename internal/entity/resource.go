package entity

// Meter is a continuous resource such as stamina or weapon durability.
// Every mutation clamps Value to [0, Max].
type Meter struct {
	Value float64
	Max   float64
}

// NewMeter returns a full meter.
func NewMeter(max float64) Meter {
	return Meter{Value: max, Max: max}
}

// Add changes the meter by delta, which may be negative.
func (m *Meter) Add(delta float64) {
	m.Set(m.Value + delta)
}

// Set assigns v, clamped to range.
func (m *Meter) Set(v float64) {
	switch {
	case v < 0:
		m.Value = 0
	case v > m.Max:
		m.Value = m.Max
	default:
		m.Value = v
	}
}

// Fill restores the meter to Max.
func (m *Meter) Fill() {
	m.Value = m.Max
}

// Fraction returns Value/Max in [0, 1].
func (m Meter) Fraction() float64 {
	if m.Max <= 0 {
		return 0
	}
	return m.Value / m.Max
}

// Health is integer hit points in [0, Max].
type Health struct {
	Current int
	Max     int
}

// NewHealth returns full health.
func NewHealth(max int) Health {
	return Health{Current: max, Max: max}
}

// IsAlive returns true while any HP remains.
func (h Health) IsAlive() bool {
	return h.Current > 0
}

// TakeDamage reduces HP and returns actual damage taken.
func (h *Health) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if actual > h.Current {
		actual = h.Current
	}
	h.Current -= actual
	return actual
}

// Heal restores HP and returns actual amount healed.
func (h *Health) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if h.Current+actual > h.Max {
		actual = h.Max - h.Current
	}
	h.Current += actual
	return actual
}

// Fraction returns Current/Max in [0, 1].
func (h Health) Fraction() float64 {
	if h.Max <= 0 {
		return 0
	}
	return float64(h.Current) / float64(h.Max)
}
