// Package tui provides the Bubble Tea front end for 2048: the local terminal
// session, the scoreboard, and the Wish SSH server that hosts one session
// per connection.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game clock tick.
type TickMsg time.Time

// tickInterval returns the tick period for the given rate, falling back to
// 30 ticks per second for non-positive rates.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 30
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
