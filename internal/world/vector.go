// Package world provides arena geometry and decorative landmark placement.
package world

import "math"

// Vector2 is a position on the ground plane. Height is a rendering concern only.
type Vector2 struct {
	X, Z float64
}

// Add returns v + o.
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Z: v.Z + o.Z}
}

// Sub returns v - o.
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Z: v.Z - o.Z}
}

// Scale returns v multiplied by s.
func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{X: v.X * s, Z: v.Z * s}
}

// Len returns the length of v.
func (v Vector2) Len() float64 {
	return math.Hypot(v.X, v.Z)
}

// Normalize returns v scaled to unit length, or the zero vector if v is zero.
func (v Vector2) Normalize() Vector2 {
	l := v.Len()
	if l == 0 {
		return Vector2{}
	}
	return Vector2{X: v.X / l, Z: v.Z / l}
}

// Rotate transforms a local-space vector into world space for the given heading.
func (v Vector2) Rotate(angle float64) Vector2 {
	sin, cos := math.Sincos(angle)
	return Vector2{
		X: v.X*cos - v.Z*sin,
		Z: v.X*sin + v.Z*cos,
	}
}

// Distance returns the planar distance between a and b.
func Distance(a, b Vector2) float64 {
	return b.Sub(a).Len()
}

// Heading returns the unit vector pointing along angle.
func Heading(angle float64) Vector2 {
	sin, cos := math.Sincos(angle)
	return Vector2{X: cos, Z: sin}
}
