package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderOutputSummary generates the content for the right pane with scrolling
func (m Model) renderOutputSummary() string {
	var s strings.Builder

	s.WriteString(highlightStyle.Render("Session Activity") + "\n\n")

	if len(m.outputSummary) == 0 {
		s.WriteString(helpStyle.Render("Nothing validated yet."))
		return s.String()
	}

	visibleLines := m.height - 8 // Account for borders, padding, title
	if visibleLines < 5 {
		visibleLines = 5
	}

	startIdx := m.outputScrollOffset
	if startIdx >= len(m.outputSummary) {
		startIdx = len(m.outputSummary) - 1
	}
	endIdx := startIdx + visibleLines
	if endIdx > len(m.outputSummary) {
		endIdx = len(m.outputSummary)
	}

	s.WriteString(strings.Join(m.outputSummary[startIdx:endIdx], "\n"))

	if len(m.outputSummary) > visibleLines {
		s.WriteString("\n\n" + helpStyle.Render("PgUp/PgDn or mouse wheel to scroll"))
	}

	return s.String()
}

func (m *Model) addToOutputSummary(item string) {
	m.outputSummary = append(m.outputSummary, item)
}

// formatSessionStatus formats a status line with key: value format and coloring
func formatSessionStatus(key, value string) string {
	keyStyled := sessionStatusStyle.Render(key + ": ")
	valueStyled := determineValueStyle(key, value).Render(value)
	return keyStyled + valueStyled
}

// determineValueStyle picks a color for a status value
func determineValueStyle(key, value string) lipgloss.Style {
	lowerKey := strings.ToLower(key)
	lowerValue := strings.ToLower(value)

	switch lowerKey {
	case "file", "saved":
		return sessionWarningValueStyle
	case "rows":
		if lowerValue != "0" && lowerValue != "" {
			return sessionSuccessValueStyle
		}
	}

	for _, pattern := range []string{"✗", "failed", "unreadable", "invalid", "error"} {
		if strings.Contains(lowerValue, pattern) {
			return sessionErrorValueStyle
		}
	}
	for _, pattern := range []string{"✓", "complete", "valid"} {
		if strings.Contains(lowerValue, pattern) {
			return sessionSuccessValueStyle
		}
	}

	return sessionNeutralValueStyle
}

func (m *Model) addFormattedAction(action string) {
	m.addToOutputSummary(sessionActionStyle.Render(action))
}

func (m *Model) addFormattedStatusIndented(key, value string) {
	m.addToOutputSummary("  " + formatSessionStatus(key, value))
}
