package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Scheduler coalesces redraw requests onto the display cadence. Every
// request supersedes the previous pending one, so at most one draw is
// outstanding and the draw that runs always observes the newest state.
type Scheduler struct {
	interval time.Duration
	pending  uint64
	drawn    uint64
}

// NewScheduler spaces frame callbacks for the given refresh rate.
func NewScheduler(fps int) *Scheduler {
	if fps < 1 {
		fps = 1
	}
	return &Scheduler{interval: time.Second / time.Duration(fps)}
}

// Request schedules a coalesced redraw, cancelling any pending request.
func (s *Scheduler) Request() tea.Cmd {
	s.pending++
	token := s.pending
	return tea.Tick(s.interval, func(time.Time) tea.Msg {
		return RedrawMsg{Token: token}
	})
}

// Consume reports whether the callback holding token should draw. Stale
// tokens belong to superseded requests and are dropped; a token only ever
// draws once.
func (s *Scheduler) Consume(token uint64) bool {
	if token != s.pending || token == s.drawn {
		return false
	}
	s.drawn = token
	return true
}

// Pending reports whether a redraw request has not been drawn yet.
func (s *Scheduler) Pending() bool {
	return s.pending != s.drawn
}
