package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// updateAlert swallows input until the alert is dismissed.
func (m Model) updateAlert(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc", " ":
		m.alert = ""
	}
	return m, nil
}

func (m Model) viewAlert() string {
	var s strings.Builder
	s.WriteString(warningStyle.Render("⚠ Alert") + "\n\n")
	s.WriteString(m.alert + "\n\n")
	s.WriteString(helpStyle.Render("Press Enter to continue"))

	box := alertStyle.Render(s.String())
	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
