package game

import (
	"time"

	"github.com/samdwyer/arenahunt/internal/entity"
)

// Direction is a movement key.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
	numDirections
)

// InputState turns terminal key presses into held movement.
// Terminals report presses (and auto-repeat) but never releases, so a key
// counts as held until hold has passed since its last press.
type InputState struct {
	hold        time.Duration
	pressed     [numDirections]time.Time
	sprintUntil time.Time
}

// NewInputState creates an input sampler with the given hold window.
func NewInputState(hold time.Duration) *InputState {
	return &InputState{hold: hold}
}

// Press records a movement key press. A shifted press also holds sprint;
// an unshifted one releases it.
func (s *InputState) Press(dir Direction, sprint bool, now time.Time) {
	if dir < 0 || dir >= numDirections {
		return
	}
	s.pressed[dir] = now
	if sprint {
		s.sprintUntil = now.Add(s.hold)
	} else {
		s.sprintUntil = time.Time{}
	}
}

// Intent samples which keys are held at now.
func (s *InputState) Intent(now time.Time) entity.Intent {
	return entity.Intent{
		Up:     s.held(DirUp, now),
		Down:   s.held(DirDown, now),
		Left:   s.held(DirLeft, now),
		Right:  s.held(DirRight, now),
		Sprint: now.Before(s.sprintUntil),
	}
}

// Reset releases every key.
func (s *InputState) Reset() {
	*s = InputState{hold: s.hold}
}

func (s *InputState) held(dir Direction, now time.Time) bool {
	t := s.pressed[dir]
	return !t.IsZero() && now.Sub(t) < s.hold
}

// movementKey maps a rune to a movement direction. Upper case means sprint.
func movementKey(r rune) (dir Direction, sprint, ok bool) {
	switch r {
	case 'w':
		return DirUp, false, true
	case 's':
		return DirDown, false, true
	case 'a':
		return DirLeft, false, true
	case 'd':
		return DirRight, false, true
	case 'W':
		return DirUp, true, true
	case 'S':
		return DirDown, true, true
	case 'A':
		return DirLeft, true, true
	case 'D':
		return DirRight, true, true
	}
	return 0, false, false
}
