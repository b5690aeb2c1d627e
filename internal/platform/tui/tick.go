// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping, and the round lifecycle
// around each game's session.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Model identifies the
// game model whose loop sent it, so a stale loop can be dropped.
type TickMsg struct {
	Time  time.Time
	Model uint64
}

// modelSeq hands out game model identities.
var modelSeq atomic.Uint64

// tickCmd returns a Bubble Tea command that sends one tick message after
// interval. The model schedules the next one when it handles the message,
// so there is only ever one tick chain per game model.
func tickCmd(interval time.Duration, model uint64) tea.Cmd {
	if interval <= 0 {
		interval = 50 * time.Millisecond
	}
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Model: model}
	})
}
