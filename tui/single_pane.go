package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"phone-validator/client"
	"phone-validator/processor"
)

const (
	alertPhoneRequired = "Please enter a phone number"
	alertNetworkError  = "Network error. Please try again."
	alertFailedPrefix  = "Validation failed: "
)

// Single validation pane handlers
func (m Model) updateSingle(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		m.focus = (m.focus + 1) % focusCount
		m.syncFocus()
		return m, nil
	case "shift+tab", "up":
		m.focus = (m.focus + focusCount - 1) % focusCount
		m.syncFocus()
		return m, nil
	case "enter":
		return m.submitSingle()
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusPhone:
		m.phoneInput, cmd = m.phoneInput.Update(msg)
	case focusCountry:
		m.countryInput, cmd = m.countryInput.Update(msg)
		m.countryInput.SetValue(strings.ToUpper(m.countryInput.Value()))
	}
	return m, cmd
}

// submitSingle validates the phone field. An empty field raises an alert
// and sends nothing.
func (m Model) submitSingle() (Model, tea.Cmd) {
	if m.button.Disabled {
		return m, nil
	}

	phone := strings.TrimSpace(m.phoneInput.Value())
	if phone == "" {
		m.alert = alertPhoneRequired
		return m, nil
	}

	m.button.Start()
	return m, tea.Batch(
		validateCmd(m.ctx, m.validator, phone, strings.TrimSpace(m.countryInput.Value())),
		m.spinner.Tick,
	)
}

// handleSingleResult restores the button first so every outcome re-enables it.
func (m Model) handleSingleResult(msg SingleResultMsg) (Model, tea.Cmd) {
	m.button.Reset()

	if msg.Err != nil {
		m.singleView = nil
		m.alert = singleAlert(msg.Err)
		m.showSummaryPane()
		m.addFormattedAction("Single validation")
		m.addFormattedStatusIndented("Status", "Failed")
		return m, nil
	}

	view := processor.Project(msg.Result)
	m.singleView = &view

	m.showSummaryPane()
	m.addFormattedAction("Validated " + m.phoneInput.Value())
	m.addFormattedStatusIndented("Result", view.Badge)
	m.addFormattedStatusIndented("Confidence", view.ConfidenceText+"%")
	return m, nil
}

func singleAlert(err error) string {
	var apiErr *client.APIError
	switch {
	case errors.As(err, &apiErr):
		return alertFailedPrefix + apiErr.Message()
	case errors.Is(err, client.ErrNetwork):
		return alertNetworkError
	case errors.Is(err, processor.ErrPhoneRequired):
		return alertPhoneRequired
	default:
		return alertFailedPrefix + err.Error()
	}
}

func (m Model) viewSingle() string {
	var s strings.Builder

	s.WriteString(m.renderField("Phone Number", m.phoneInput.View(), m.focus == focusPhone) + "\n")
	s.WriteString(m.renderField("Country Code", m.countryInput.View(), m.focus == focusCountry) + "\n\n")

	button := buttonStyle
	if m.button.Disabled {
		button = disabledButtonStyle
	}
	label := m.button.Label
	if m.focus == focusSubmit && !m.button.Disabled {
		label = "▶ " + label
	}
	s.WriteString(button.Render(label))
	if m.button.Disabled {
		s.WriteString(" " + m.spinner.View())
	}
	s.WriteString("\n\n")

	if m.singleView != nil {
		s.WriteString(m.renderSingleResult(*m.singleView))
	}

	return s.String()
}

func (m Model) renderField(label, input string, focused bool) string {
	style := labelStyle
	if focused {
		style = focusedLabelStyle
	}
	return style.Render(label) + input
}

func (m Model) renderSingleResult(v processor.SingleView) string {
	var s strings.Builder

	badge := badgeErrorStyle.Render(v.Badge)
	if v.Valid {
		badge = badgeSuccessStyle.Render(v.Badge)
	}
	s.WriteString(highlightStyle.Render("Result ") + badge + "\n\n")

	s.WriteString(resultRow("Confidence", fmt.Sprintf("%s %s%%", confidenceBar(v.Confidence, 24), v.ConfidenceText)))
	s.WriteString(resultRow("Formatted", v.FormattedNumber))
	s.WriteString(resultRow("Country", v.Country))
	s.WriteString(resultRow("Carrier", v.Carrier))
	s.WriteString(resultRow("Line Type", v.LineType))
	s.WriteString(resultRow("WhatsApp", v.WhatsApp))
	s.WriteString(resultRow("Account Type", v.AccountType))
	s.WriteString(resultRow("Processing Time", v.ProcessingTime))
	s.WriteString(resultRow("Strategy", v.Strategy))

	width := m.leftPaneWidth - 30
	if width < 30 {
		width = 30
	}
	s.WriteString("\n" + resultLabelStyle.Render("Reasoning") + "\n")
	for _, line := range m.wrapText(v.Reasoning, width) {
		s.WriteString("  " + resultValueStyle.Render(line) + "\n")
	}

	return s.String()
}

func resultRow(label, value string) string {
	return resultLabelStyle.Render(label) + resultValueStyle.Render(value) + "\n"
}

// confidenceBar fills width cells in proportion to score, clamped to 0..100.
func confidenceBar(score float64, width int) string {
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	filled := int(score / 100 * float64(width))
	return barFillStyle.Render(strings.Repeat("█", filled)) +
		barEmptyStyle.Render(strings.Repeat("░", width-filled))
}
