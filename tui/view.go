package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const appTitle = "📱 Phone Validator"

// View implements tea.Model
func (m Model) View() string {
	if m.alert != "" {
		return m.viewAlert()
	}

	var s strings.Builder
	s.WriteString(titleStyle.Render(appTitle) + "\n")
	s.WriteString(m.tabs.Render() + "\n\n")

	switch m.tabs.ActivePane() {
	case PaneSingle:
		s.WriteString(m.viewSingle())
	case PaneBatch:
		s.WriteString(m.viewBatch())
	}

	s.WriteString("\n" + helpStyle.Render(m.helpLine()))

	return m.renderWithDynamicWidth(s.String())
}

func (m Model) helpLine() string {
	switch m.tabs.ActivePane() {
	case PaneBatch:
		return "F1/F2 or click to switch tabs • Enter upload • ↑/↓ scroll rows • Ctrl+S download • Ctrl+C quit"
	default:
		return "F1/F2 or click to switch tabs • Tab next field • Enter validate • Ctrl+C quit"
	}
}

// tabBarOrigin is the screen cell where the tab bar starts. It mirrors
// the margins, borders and padding applied by the layouts below, plus
// the title line and its bottom padding.
func (m Model) tabBarOrigin() (int, int) {
	const titleLines = 2
	switch {
	case m.width == 0 || m.height == 0:
		return 3 + 1, 2 + 1 + titleLines
	case m.showRightPane && m.leftPaneWidth > 0 && m.rightPaneWidth > 0:
		return 1 + 1 + 1, 1 + 1 + 1 + titleLines
	default:
		return 2 + 1 + 2, 1 + 1 + 1 + titleLines
	}
}

// renderWithDynamicWidth renders content with two-pane layout
func (m Model) renderWithDynamicWidth(content string) string {
	if m.width > 0 && m.height > 0 {
		if m.showRightPane && m.leftPaneWidth > 0 && m.rightPaneWidth > 0 {
			return m.renderTwoPaneLayout(content)
		}
		return m.renderSinglePaneLayout(content)
	}

	return boxStyle.Render(content)
}

// renderSinglePaneLayout renders content in single pane mode
func (m Model) renderSinglePaneLayout(content string) string {
	marginHorizontal := 2
	marginVertical := 1

	contentWidth := m.width - (marginHorizontal * 2) - 2 // 2 for border
	contentHeight := m.height - (marginVertical * 2) - 2 // 2 for border

	if contentWidth < 50 {
		contentWidth = 50
	}
	if contentHeight < 10 {
		contentHeight = 10
	}

	mainStyle := lipgloss.NewStyle().
		Width(contentWidth).
		Height(contentHeight).
		Padding(1, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(secondaryColor).
		Align(lipgloss.Left)

	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Padding(marginVertical, marginHorizontal).
		Render(mainStyle.Render(content))
}

// renderTwoPaneLayout renders content with left and right panes
func (m Model) renderTwoPaneLayout(content string) string {
	marginVertical := 1
	contentHeight := m.height - (marginVertical * 2) - 2 // 2 for border

	if contentHeight < 10 {
		contentHeight = 10
	}

	leftWidth := m.leftPaneWidth - 4   // Account for border and padding
	rightWidth := m.rightPaneWidth - 4 // Account for border and padding

	paneStyle := lipgloss.NewStyle().
		Height(contentHeight).
		Padding(1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(secondaryColor)

	leftPane := paneStyle.Width(leftWidth).Render(content)
	rightPane := paneStyle.Width(rightWidth).Render(m.renderOutputSummary())

	return lipgloss.NewStyle().
		Padding(marginVertical, 1).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, leftPane, " ", rightPane))
}

// wrapText wraps text to fit within the specified width
func (m Model) wrapText(text string, width int) []string {
	if len(text) <= width {
		return []string{text}
	}

	var lines []string
	words := strings.Fields(text)
	var currentLine strings.Builder

	for _, word := range words {
		if currentLine.Len() > 0 && currentLine.Len()+len(word)+1 > width {
			lines = append(lines, currentLine.String())
			currentLine.Reset()
		}

		if currentLine.Len() > 0 {
			currentLine.WriteString(" ")
		}
		currentLine.WriteString(word)
	}

	if currentLine.Len() > 0 {
		lines = append(lines, currentLine.String())
	}

	return lines
}
