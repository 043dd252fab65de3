package ui

import (
	"math"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/arenahunt/internal/world"
)

func newTestScreen(t *testing.T, width, height int) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	s, err := newScreenFrom(sim)
	if err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	sim.SetSize(width, height)
	t.Cleanup(s.Close)
	return s, sim
}

func runeAt(sim tcell.SimulationScreen, x, y int) rune {
	r, _, _, _ := sim.GetContent(x, y)
	return r
}

func TestProject(t *testing.T) {
	f := Frame{Center: world.Vector2{X: 10, Z: 10}, Scale: 0.5}

	tests := []struct {
		name  string
		p     world.Vector2
		wantX int
		wantY int
	}{
		{"center", world.Vector2{X: 10, Z: 10}, 40, 12},
		{"right", world.Vector2{X: 12, Z: 10}, 44, 12},
		{"left", world.Vector2{X: 8, Z: 10}, 36, 12},
		{"down", world.Vector2{X: 10, Z: 12}, 40, 14},
		{"up", world.Vector2{X: 10, Z: 7}, 40, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := f.Project(tt.p, 80, 24)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("Project(%v) = (%d, %d), want (%d, %d)", tt.p, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestProjectZeroScale(t *testing.T) {
	f := Frame{}
	x, y := f.Project(world.Vector2{X: 3, Z: 4}, 80, 24)
	if x != 43 || y != 14 {
		t.Errorf("Project with zero scale = (%d, %d), want (43, 14)", x, y)
	}
}

func TestFacingRune(t *testing.T) {
	tests := []struct {
		angle float64
		want  rune
	}{
		{0, '→'},
		{math.Pi / 2, '↓'},
		{math.Pi, '←'},
		{-math.Pi / 2, '↑'},
		{3 * math.Pi / 2, '↑'},
		{math.Pi / 4, '↘'},
	}
	for _, tt := range tests {
		if got := facingRune(tt.angle); got != tt.want {
			t.Errorf("facingRune(%v) = %q, want %q", tt.angle, got, tt.want)
		}
	}
}

func TestRenderDrawsFrame(t *testing.T) {
	screen, sim := newTestScreen(t, 80, 24)
	r := NewRenderer(screen)

	r.Render(Frame{
		Scale: 1,
		Landmarks: []world.Landmark{
			{Kind: world.LandmarkTree, Position: world.Vector2{X: -10, Z: 0}, Size: 1},
		},
		Markers: []Marker{
			{Position: world.Vector2{}, Rune: '@', Color: tcell.ColorWhite, ShowFacing: true},
			{Position: world.Vector2{X: 5, Z: 0}, Rune: 'M', Color: tcell.ColorRed},
		},
		HUD:    []Line{{Text: "HP", Color: tcell.ColorWhite}},
		Banner: []Line{{Text: "VICTORY!", Color: tcell.ColorGreen, Bold: true}},
	})

	if got := runeAt(sim, 40, 12); got != '@' {
		t.Errorf("player cell = %q, want '@'", got)
	}
	if got := runeAt(sim, 30, 12); got != 'T' {
		t.Errorf("tree cell = %q, want 'T'", got)
	}
	if got := runeAt(sim, 1, 0); got != 'H' {
		t.Errorf("HUD cell = %q, want 'H'", got)
	}
	if got := runeAt(sim, 36, 11); got != 'V' {
		t.Errorf("banner start = %q, want 'V'", got)
	}
}

func TestRenderMarkersWithoutBanner(t *testing.T) {
	screen, sim := newTestScreen(t, 80, 24)
	r := NewRenderer(screen)

	r.Render(Frame{
		Scale: 1,
		Markers: []Marker{
			{Position: world.Vector2{}, Rune: '@', Color: tcell.ColorWhite, ShowFacing: true},
			{Position: world.Vector2{X: 5, Z: 0}, Rune: 'M', Color: tcell.ColorRed},
		},
	})

	if got := runeAt(sim, 40, 12); got != '@' {
		t.Errorf("player cell = %q, want '@'", got)
	}
	if got := runeAt(sim, 42, 12); got != '→' {
		t.Errorf("facing cell = %q, want '→'", got)
	}
	if got := runeAt(sim, 45, 12); got != 'M' {
		t.Errorf("monster cell = %q, want 'M'", got)
	}
}

func TestRenderClipsOffscreen(t *testing.T) {
	screen, _ := newTestScreen(t, 20, 10)
	r := NewRenderer(screen)

	// Must not panic on cells outside the screen.
	r.Render(Frame{
		Scale:   1,
		Markers: []Marker{{Position: world.Vector2{X: 500, Z: -500}, Rune: 'M'}},
		HUD:     []Line{{Text: "a line much longer than the twenty column screen"}},
	})
}

func TestScreenCloseTwice(t *testing.T) {
	screen, _ := newTestScreen(t, 10, 10)
	screen.Close()
	screen.Close()
}
