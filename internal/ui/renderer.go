package ui

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/arenahunt/internal/world"
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws a frame: landmarks, then actors, then the HUD and banner.
func (r *Renderer) Render(f Frame) {
	r.screen.Clear()
	width, height := r.screen.Size()

	for _, lm := range f.Landmarks {
		x, y := f.Project(lm.Position, width, height)
		r.put(x, y, lm.Kind.Rune(), landmarkStyle(lm))
	}

	for _, m := range f.Markers {
		x, y := f.Project(m.Position, width, height)
		if m.ShowFacing {
			ahead := m.Position.Add(world.Heading(m.Facing).Scale(f.Scale * 1.5))
			fx, fy := f.Project(ahead, width, height)
			if fx != x || fy != y {
				r.put(fx, fy, facingRune(m.Facing), tcell.StyleDefault.Foreground(m.Color))
			}
		}
		r.put(x, y, m.Rune, tcell.StyleDefault.Foreground(m.Color).Bold(true))
	}

	for i, line := range f.HUD {
		r.RenderLine(line, 1, i)
	}

	if len(f.Banner) > 0 {
		top := (height - len(f.Banner)) / 2
		for i, line := range f.Banner {
			left := (width - len([]rune(line.Text))) / 2
			r.RenderLine(line, left, top+i)
		}
	}

	r.screen.Show()
}

// RenderLine draws one line of text starting at (x, y).
func (r *Renderer) RenderLine(line Line, x, y int) {
	style := tcell.StyleDefault.Foreground(line.Color).Bold(line.Bold)
	i := 0
	for _, ch := range line.Text {
		r.put(x+i, y, ch, style)
		i++
	}
}

func (r *Renderer) put(x, y int, ch rune, style tcell.Style) {
	width, height := r.screen.Size()
	if x < 0 || y < 0 || x >= width || y >= height {
		return
	}
	r.screen.SetContent(x, y, ch, style)
}

func landmarkStyle(lm world.Landmark) tcell.Style {
	switch lm.Kind {
	case world.LandmarkTree:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen)
	case world.LandmarkRock:
		if lm.Size >= 1.5 {
			return tcell.StyleDefault.Foreground(tcell.ColorGray)
		}
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	default:
		return tcell.StyleDefault
	}
}

// facingRune picks an arrow for an angle measured from +X toward +Z.
func facingRune(angle float64) rune {
	arrows := [...]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}
	octant := int(math.Round(angle/(math.Pi/4))) % len(arrows)
	if octant < 0 {
		octant += len(arrows)
	}
	return arrows[octant]
}
