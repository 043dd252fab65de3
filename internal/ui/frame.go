package ui

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/arenahunt/internal/world"
)

// Marker is an actor drawn on the field.
type Marker struct {
	Position world.Vector2
	Facing   float64
	Rune     rune
	Color    tcell.Color
	// ShowFacing draws a pointer one cell ahead in the facing direction.
	ShowFacing bool
}

// Line is one line of overlay text.
type Line struct {
	Text  string
	Color tcell.Color
	Bold  bool
}

// Frame is everything drawn in one render pass.
type Frame struct {
	Center    world.Vector2 // world point shown at the middle of the screen
	Scale     float64       // world units per column
	Landmarks []world.Landmark
	Markers   []Marker
	HUD       []Line // top-left panel
	Banner    []Line // centred panel, empty while playing
}

// Project maps a world point to a screen cell for a screen of the given size.
// Rows are twice as tall as columns are wide, so Z is halved.
func (f Frame) Project(p world.Vector2, width, height int) (x, y int) {
	scale := f.Scale
	if scale <= 0 {
		scale = 1
	}
	d := p.Sub(f.Center)
	x = width/2 + int(math.Round(d.X/scale))
	y = height/2 + int(math.Round(d.Z/(scale*2)))
	return x, y
}
