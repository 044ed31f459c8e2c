package input

import (
	"sync"
	"time"
)

type keySource uint8

const (
	sourceNone keySource = iota
	sourceKeyboard
	sourceButton
)

// State holds the current key code, last writer wins
// Terminals report no key release, so a keyboard press is held until no press or auto-repeat
// has arrived for a while. The first press is held for the repeat delay, which covers the
// terminal's wait before auto-repeat starts; once repeats arrive each one holds for the
// shorter repeat window. Virtual buttons are held until explicitly released.
type State struct {
	mu      sync.Mutex
	code    KeyCode
	source  keySource
	expires time.Time

	delay time.Duration // Hold after the first press
	hold  time.Duration // Hold after each auto-repeat
}

// NewState creates an empty key state
// delay covers the terminal's initial auto-repeat delay; hold is the window between repeats
func NewState(delay, hold time.Duration) *State {
	return &State{delay: max(delay, hold), hold: hold}
}

// KeyDown records a keyboard press or auto-repeat
// A press of the key already held counts as a repeat
func (s *State) KeyDown(code KeyCode, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	held := s.source == sourceKeyboard && s.code == code && now.Before(s.expires)
	s.code = code
	s.source = sourceKeyboard
	if held {
		s.expires = now.Add(s.hold)
	} else {
		s.expires = now.Add(s.delay)
	}
}

// ButtonDown records a virtual button press (mouse or touch)
func (s *State) ButtonDown(code KeyCode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.code = code
	s.source = sourceButton
	s.expires = time.Time{}
}

// Release clears the current key (key-up, mouse-up, touch-end)
func (s *State) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.code = KeyNone
	s.source = sourceNone
	s.expires = time.Time{}
}

// Current returns the key held at now, expiring stale keyboard presses
func (s *State) Current(now time.Time) KeyCode {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.source == sourceKeyboard && !now.Before(s.expires) {
		s.code = KeyNone
		s.source = sourceNone
	}
	return s.code
}
