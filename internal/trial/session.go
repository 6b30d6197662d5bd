// Package trial implements the preview countdown that gates playback for
// anonymous viewers: a fixed-duration grant that expires into a paywall.
package trial

import (
	"fmt"
	"sync"
)

type State int

const (
	StateRunning State = iota
	StateExpired
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateExpired:
		return "expired"
	default:
		return "stopped"
	}
}

// Tick is one second of countdown as shown to the viewer.
type Tick struct {
	Remaining int    `json:"remaining"`
	Display   string `json:"display"`
	Expired   bool   `json:"expired"`
}

// Session is a single-use preview window for one channel. It starts Running
// and counts down once per second; when the countdown reaches zero it
// transitions to Expired and never back. Stopping (viewer closed the surface)
// halts ticking with no further transitions.
type Session struct {
	ChannelID   string
	ChannelName string

	mu        sync.Mutex
	remaining int
	state     State
}

// NewSession starts a session in the Running state with the full countdown.
func NewSession(channelID, channelName string, durationSeconds int) *Session {
	if durationSeconds <= 0 {
		durationSeconds = 180
	}
	return &Session{
		ChannelID:   channelID,
		ChannelName: channelName,
		remaining:   durationSeconds,
		state:       StateRunning,
	}
}

// Advance consumes one second of trial time. It returns the tick to display
// and whether the session is still accepting ticks. The displayed value is
// monotonically non-increasing, reaches exactly "0m 0s" on the final tick,
// and never goes negative; the Expired transition fires on that final tick.
func (s *Session) Advance() (Tick, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRunning {
		return Tick{}, false
	}

	s.remaining--
	tick := Tick{
		Remaining: s.remaining,
		Display:   formatRemaining(s.remaining),
	}

	if s.remaining <= 0 {
		s.state = StateExpired
		tick.Expired = true
	}
	return tick, true
}

// Stop halts the countdown. Safe to call at any time; an expired session
// stays expired.
func (s *Session) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateRunning {
		s.state = StateStopped
	}
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Remaining returns the seconds left on the countdown.
func (s *Session) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remaining
}

func formatRemaining(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%dm %ds", seconds/60, seconds%60)
}
