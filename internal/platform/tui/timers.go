// Package tui provides the Bubble Tea integration for the snake game.
// It owns the terminal loop, the two game timers and key handling, and
// hosts the same model over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// simTickMsg advances the simulation by one step.
type simTickMsg struct{ gen uint64 }

// countdownTickMsg steps the pre-game countdown.
type countdownTickMsg struct{ gen uint64 }

func newSimTick(gen uint64) tea.Msg       { return simTickMsg{gen: gen} }
func newCountdownTick(gen uint64) tea.Msg { return countdownTickMsg{gen: gen} }

// timer is a periodic task built from one-shot tea.Tick commands.
// At most one tick per timer is in flight and only a tick carrying the
// current generation is honoured, so cancelling or re-timing a task is a
// generation bump.
type timer struct {
	gen    uint64
	armed  bool
	period time.Duration
	msg    func(gen uint64) tea.Msg
}

func newTimer(msg func(gen uint64) tea.Msg) timer {
	return timer{msg: msg}
}

// current reports whether a tick with generation gen is the live one.
func (t *timer) current(gen uint64) bool {
	return t.armed && gen == t.gen
}

// fired consumes the live tick. The next sync re-arms it.
func (t *timer) fired() {
	t.armed = false
}

// sync brings the timer in line with whether it should run and at what
// period. It returns the command for a newly armed tick, or nil.
// restart forces a fresh tick even when nothing changed.
func (t *timer) sync(active bool, period time.Duration, restart bool) tea.Cmd {
	if !restart && active == t.armed && (!active || period == t.period) {
		return nil
	}
	if !active && !t.armed {
		return nil
	}

	t.gen++
	t.armed = active
	t.period = period
	if !active {
		return nil
	}

	gen, msg := t.gen, t.msg
	return tea.Tick(period, func(time.Time) tea.Msg {
		return msg(gen)
	})
}
