package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/balkashynov/matwork/internal/playback"
)

// phaseTickMsg is delivered once per interval while a phase is armed
type phaseTickMsg struct {
	armID int
	token playback.Token
}

// teaScheduler adapts the bubbletea tick loop to playback.Scheduler. Arm only
// records the request; the model turns it into a tea.Cmd after each engine
// call. Ticks from a cancelled arm carry a dead armID and are dropped.
type teaScheduler struct {
	nextID   int
	active   int
	token    playback.Token
	interval time.Duration
	pending  bool
}

func (s *teaScheduler) Arm(token playback.Token, interval time.Duration) playback.CancelFunc {
	s.nextID++
	id := s.nextID
	s.active = id
	s.token = token
	s.interval = interval
	s.pending = true
	return func() {
		if s.active == id {
			s.active = 0
			s.pending = false
		}
	}
}

// live reports whether msg belongs to the current arm
func (s *teaScheduler) live(msg phaseTickMsg) bool {
	return s.active != 0 && msg.armID == s.active
}

// take returns the command for a freshly armed source, if any
func (s *teaScheduler) take() tea.Cmd {
	if !s.pending {
		return nil
	}
	s.pending = false
	return s.next()
}

// next schedules the following tick of the active source
func (s *teaScheduler) next() tea.Cmd {
	if s.active == 0 {
		return nil
	}
	msg := phaseTickMsg{armID: s.active, token: s.token}
	return tea.Tick(s.interval, func(time.Time) tea.Msg {
		return msg
	})
}
