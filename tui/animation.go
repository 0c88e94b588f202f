package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent periodically while a batch upload is running. ID names
// the upload that armed the tick.
type TickMsg struct {
	Time time.Time
	ID   int
}

// tickCmd returns a command that sends periodic tick messages
func tickCmd(interval time.Duration, id int) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, ID: id}
	})
}
