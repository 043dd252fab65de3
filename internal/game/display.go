package game

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/arenahunt/internal/entity"
	"github.com/samdwyer/arenahunt/internal/gamedata"
	"github.com/samdwyer/arenahunt/internal/ui"
	"github.com/samdwyer/arenahunt/internal/world"
)

const barWidth = 20

var (
	colorText    = tcell.ColorWhite
	colorDim     = tcell.ColorGray
	colorGood    = gamedata.ColorOr("#44ff44", tcell.ColorGreen)
	colorWarn    = gamedata.ColorOr("#ffaa44", tcell.ColorOrange)
	colorBad     = gamedata.ColorOr("#ff4444", tcell.ColorRed)
	colorStamina = gamedata.ColorOr("#44aaff", tcell.ColorBlue)
)

// Percent returns value/max as a whole percentage in [0, 100].
func Percent(value, max float64) int {
	if max <= 0 {
		return 0
	}
	p := math.Floor(value / max * 100)
	return int(math.Max(0, math.Min(100, p)))
}

// FormatDistance formats a distance in world units as metres with one decimal.
func FormatDistance(d float64) string {
	return fmt.Sprintf("%.1fm", d)
}

// FormatPlayTime formats seconds as m:ss.
func FormatPlayTime(seconds float64) string {
	total := int(math.Max(0, seconds))
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// Bar draws a fill bar like [#####-----].
func Bar(fraction float64, width int) string {
	fraction = math.Max(0, math.Min(1, fraction))
	filled := int(math.Round(fraction * float64(width)))
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

// StatusText returns the one-line status for the current state and its colour.
func StatusText(s Snapshot) (string, tcell.Color) {
	switch {
	case s.Monster.HP <= 0:
		return "Monster slain!", colorGood
	case s.Player.HP <= 0:
		return "You are down!", colorBad
	}
	switch s.Monster.Phase {
	case entity.PhaseEnraged:
		return "Danger! The monster is enraged!", colorBad
	case entity.PhaseAlert:
		return "The monster is approaching!", colorWarn
	default:
		return "Exploring...", colorText
	}
}

// WeaponHint returns a warning when the weapon is worn out, or "".
func WeaponHint(s Snapshot) string {
	if s.Player.Durability <= 0 {
		return "Weapon broken! Press R to repair"
	}
	return ""
}

// ActionText describes what the hunter is doing, or "" when idle.
func ActionText(s Snapshot) string {
	p := s.Player
	switch {
	case p.Attacking:
		return "Attacking " + Bar(p.AttackProgress, 10)
	case p.Dodging:
		return "Dodging"
	case p.Sprinting:
		return "Sprinting"
	}
	return ""
}

// PhaseColor returns the display colour for the monster's current phase.
func PhaseColor(s Snapshot) tcell.Color {
	return s.Monster.PhaseColor
}

// HUDLines builds the status panel.
func HUDLines(s Snapshot) []ui.Line {
	p := s.Player
	hpColor := colorGood
	if p.Flashing {
		hpColor = colorBad
	}

	lines := []ui.Line{
		{Text: fmt.Sprintf("%-8s %s %d%%", "Health", Bar(float64(p.HP)/float64(max(p.MaxHP, 1)), barWidth),
			Percent(float64(p.HP), float64(p.MaxHP))), Color: hpColor},
		{Text: fmt.Sprintf("%-8s %s %d%%", "Stamina", Bar(p.Stamina/math.Max(p.MaxStamina, 1), barWidth),
			Percent(p.Stamina, p.MaxStamina)), Color: colorStamina},
		{Text: fmt.Sprintf("%-8s %s %d%%", "Weapon", Bar(p.Durability/math.Max(p.MaxDurability, 1), barWidth),
			Percent(p.Durability, p.MaxDurability)), Color: colorText},
	}
	if action := ActionText(s); action != "" {
		lines = append(lines, ui.Line{Text: action, Color: colorDim})
	}
	if hint := WeaponHint(s); hint != "" {
		lines = append(lines, ui.Line{Text: hint, Color: colorWarn, Bold: true})
	}

	lines = append(lines, ui.Line{})

	m := s.Monster
	if m.HP > 0 {
		lines = append(lines,
			ui.Line{Text: fmt.Sprintf("%s - %s", m.Name, m.PhaseLabel), Color: PhaseColor(s), Bold: m.Roaring},
			ui.Line{Text: fmt.Sprintf("%-8s %s %d%%", "Health", Bar(float64(m.HP)/float64(max(m.MaxHP, 1)), barWidth),
				Percent(float64(m.HP), float64(m.MaxHP))), Color: PhaseColor(s)},
			ui.Line{Text: "Distance " + FormatDistance(s.Distance), Color: colorText},
		)
	}

	status, color := StatusText(s)
	lines = append(lines,
		ui.Line{Text: status, Color: color, Bold: true},
		ui.Line{Text: "Time " + FormatPlayTime(s.Elapsed), Color: colorDim},
	)
	return lines
}

// SummaryLines builds the game-over banner, or nil while the match runs.
func SummaryLines(s Snapshot) []ui.Line {
	var lines []ui.Line
	switch s.Outcome {
	case OutcomeVictory:
		lines = []ui.Line{
			{Text: "VICTORY!", Color: colorGood, Bold: true},
			{Text: "You slew the " + strings.ToLower(s.Monster.Name) + "!", Color: colorText},
			{},
			{Text: "Play time: " + FormatPlayTime(s.Elapsed), Color: colorText},
			{Text: fmt.Sprintf("Final HP: %d/%d", s.Player.HP, s.Player.MaxHP), Color: colorText},
			{Text: fmt.Sprintf("Damage dealt: %d", s.DamageDealt), Color: colorText},
		}
	case OutcomeDefeat:
		lines = []ui.Line{
			{Text: "GAME OVER", Color: colorBad, Bold: true},
			{Text: "You were knocked out...", Color: colorText},
			{},
			{Text: "Play time: " + FormatPlayTime(s.Elapsed), Color: colorText},
			{Text: fmt.Sprintf("Damage dealt: %d", s.DamageDealt), Color: colorText},
			{Text: fmt.Sprintf("Damage taken: %d", s.DamageTaken), Color: colorText},
		}
	default:
		return nil
	}
	return append(lines, ui.Line{}, ui.Line{Text: "N: new hunt   Esc: quit", Color: colorDim})
}

// BuildFrame assembles everything drawn for one snapshot, centred on the hunter.
func BuildFrame(s Snapshot, landmarks []world.Landmark, scale float64) ui.Frame {
	playerColor := colorText
	if s.Player.Flashing {
		playerColor = colorBad
	}

	markers := []ui.Marker{
		{Position: s.Player.Position, Facing: s.Player.Facing, Rune: '@', Color: playerColor, ShowFacing: true},
	}
	if s.Monster.HP > 0 {
		r := 'M'
		if s.Monster.Roaring {
			r = 'W'
		}
		markers = append(markers, ui.Marker{
			Position: s.Monster.Position,
			Facing:   s.Monster.Facing,
			Rune:     r,
			Color:    PhaseColor(s),
		})
	}

	return ui.Frame{
		Center:    s.Player.Position,
		Scale:     scale,
		Landmarks: landmarks,
		Markers:   markers,
		HUD:       HUDLines(s),
		Banner:    SummaryLines(s),
	}
}
