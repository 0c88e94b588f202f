package tui

import (
	"github.com/charmbracelet/lipgloss"

	"phone-validator/models"
)

var (
	// Colors - Professional blue/purple theme
	primaryColor   = lipgloss.Color("#7C3AED") // Purple
	secondaryColor = lipgloss.Color("#3B82F6") // Blue
	accentColor    = lipgloss.Color("#06B6D4") // Cyan
	successColor   = lipgloss.Color("#10B981") // Green
	warningColor   = lipgloss.Color("#F59E0B") // Amber
	errorColor     = lipgloss.Color("#EF4444") // Red
	mutedColor     = lipgloss.Color("#6B7280") // Gray
	textColor      = lipgloss.Color("#F9FAFB") // Light gray
	surfaceColor   = lipgloss.Color("#374151") // Dark gray

	// Box container
	boxStyle = lipgloss.NewStyle().
			Padding(2, 3).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(secondaryColor).
			Align(lipgloss.Left)

	titleStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true).
			PaddingBottom(1)

	// Tab bar
	tabStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Padding(0, 2)

	activeTabStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Background(primaryColor).
			Bold(true).
			Padding(0, 2)

	// Form fields
	labelStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Bold(true).
			Width(14)

	focusedLabelStyle = labelStyle.
				Foreground(primaryColor)

	buttonStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Background(secondaryColor).
			Bold(true).
			Padding(0, 2)

	disabledButtonStyle = lipgloss.NewStyle().
				Foreground(mutedColor).
				Background(surfaceColor).
				Padding(0, 2)

	// Result panel
	resultLabelStyle = lipgloss.NewStyle().
				Foreground(mutedColor).
				Width(18)

	resultValueStyle = lipgloss.NewStyle().
				Foreground(textColor)

	badgeSuccessStyle = lipgloss.NewStyle().
				Foreground(textColor).
				Background(successColor).
				Bold(true).
				Padding(0, 1)

	badgeErrorStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Background(errorColor).
			Bold(true).
			Padding(0, 1)

	barFillStyle  = lipgloss.NewStyle().Foreground(accentColor)
	barEmptyStyle = lipgloss.NewStyle().Foreground(surfaceColor)

	// Status styles
	successStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(warningColor).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	highlightStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true)

	progressTextStyle = lipgloss.NewStyle().
				Foreground(secondaryColor)

	// Alert dialog
	alertStyle = lipgloss.NewStyle().
			Padding(1, 3).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(warningColor)

	// Table
	tableBorderStyle = lipgloss.NewStyle().Foreground(secondaryColor)
	tableHeaderStyle = lipgloss.NewStyle().Foreground(primaryColor).Bold(true).Padding(0, 1)
	tableCellStyle   = lipgloss.NewStyle().Foreground(textColor).Padding(0, 1)

	// Session summary pane
	sessionActionStyle = lipgloss.NewStyle().
				Foreground(accentColor).
				Italic(true)

	sessionStatusStyle = lipgloss.NewStyle().
				Foreground(mutedColor)

	sessionSuccessValueStyle = lipgloss.NewStyle().Foreground(successColor)
	sessionWarningValueStyle = lipgloss.NewStyle().Foreground(warningColor)
	sessionErrorValueStyle   = lipgloss.NewStyle().Foreground(errorColor)
	sessionNeutralValueStyle = lipgloss.NewStyle().Foreground(textColor)
)

// tierStyle colors the confidence dot of a batch row.
func tierStyle(tier models.ConfidenceTier) lipgloss.Style {
	switch tier {
	case models.TierHigh:
		return tableCellStyle.Foreground(successColor)
	case models.TierMedium:
		return tableCellStyle.Foreground(warningColor)
	default:
		return tableCellStyle.Foreground(errorColor)
	}
}
