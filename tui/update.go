package tui

import (
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case tea.KeyMsg:
		return m.handleKeyMessage(msg)
	case tea.MouseMsg:
		return m.handleMouseMessage(msg)
	case SingleResultMsg:
		return m.handleSingleResult(msg)
	case BatchProgressMsg:
		return m.handleBatchProgress(msg)
	case BatchDoneMsg:
		return m.handleBatchDone(msg)
	case DownloadResultMsg:
		return m.handleDownloadResult(msg)
	case TickMsg:
		return m.handleTickMessage(msg)
	case spinner.TickMsg:
		if !m.button.Disabled && !m.progress.Active() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case progress.FrameMsg:
		return m, nil
	}

	return m.updateFocusedInput(msg)
}

// handleWindowSize handles window resize events
func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.layoutPanes()
	return m, nil
}

func (m *Model) layoutPanes() {
	if m.showRightPane {
		m.leftPaneWidth = int(float64(m.width) * 0.6)    // 60% for left pane
		m.rightPaneWidth = m.width - m.leftPaneWidth - 1 // 40% for right pane (minus 1 for separator)
	} else {
		m.leftPaneWidth = m.width
		m.rightPaneWidth = 0
	}

	barWidth := m.leftPaneWidth - 16
	if barWidth < 20 {
		barWidth = 20
	}
	if barWidth > 80 {
		barWidth = 80
	}
	m.progressBar.Width = barWidth
	m.failedBar.Width = barWidth
}

// handleKeyMessage handles keyboard input for the active pane
func (m Model) handleKeyMessage(msg tea.KeyMsg) (Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.alert != "" {
		return m.updateAlert(msg)
	}

	switch msg.String() {
	case "f1":
		m.activateTab(PaneSingle)
		return m, nil
	case "f2":
		m.activateTab(PaneBatch)
		return m, nil
	case "ctrl+t":
		m.tabs.Next()
		m.syncFocus()
		return m, nil
	}

	// Handle global scroll keys for right pane when it's visible
	if m.showRightPane {
		switch msg.String() {
		case "pgup", "ctrl+u":
			m.scrollSummary(-5)
			return m, nil
		case "pgdn", "ctrl+d":
			m.scrollSummary(5)
			return m, nil
		}
	}

	switch m.tabs.ActivePane() {
	case PaneSingle:
		return m.updateSingle(msg)
	case PaneBatch:
		return m.updateBatch(msg)
	}

	return m, nil
}

// handleMouseMessage handles tab clicks and wheel scrolling
func (m Model) handleMouseMessage(msg tea.MouseMsg) (Model, tea.Cmd) {
	if m.alert != "" {
		return m, nil
	}

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		originX, originY := m.tabBarOrigin()
		if msg.Y == originY {
			if target, ok := m.tabs.HitTest(msg.X - originX); ok {
				m.activateTab(target)
			}
		}
		return m, nil
	}

	// Handle mouse wheel scrolling for right pane when visible
	if m.showRightPane {
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.scrollSummary(-2)
			return m, nil
		case tea.MouseButtonWheelDown:
			m.scrollSummary(2)
			return m, nil
		}
	}

	if m.tabs.IsActive(PaneBatch) && m.table != nil {
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.scrollTable(-2)
		case tea.MouseButtonWheelDown:
			m.scrollTable(2)
		}
	}

	return m, nil
}

// handleTickMessage advances the batch progress animation. Ticks armed
// by an earlier upload are dropped so only one timer runs.
func (m Model) handleTickMessage(msg TickMsg) (Model, tea.Cmd) {
	if msg.ID != m.tickID {
		return m, nil
	}
	if m.progress.Tick() {
		return m, tickCmd(m.cfg.TickInterval, m.tickID)
	}
	return m, nil
}

func (m *Model) activateTab(target string) {
	if m.tabs.Activate(target) {
		m.syncFocus()
	}
}

// syncFocus gives keyboard focus to the inputs of the visible pane.
func (m *Model) syncFocus() {
	m.phoneInput.Blur()
	m.countryInput.Blur()
	m.pathInput.Blur()

	switch m.tabs.ActivePane() {
	case PaneSingle:
		switch m.focus {
		case focusPhone:
			m.phoneInput.Focus()
		case focusCountry:
			m.countryInput.Focus()
		}
	case PaneBatch:
		m.pathInput.Focus()
	}
}

// updateFocusedInput forwards non-key messages such as cursor blink.
func (m Model) updateFocusedInput(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.tabs.ActivePane() {
	case PaneSingle:
		switch m.focus {
		case focusPhone:
			m.phoneInput, cmd = m.phoneInput.Update(msg)
		case focusCountry:
			m.countryInput, cmd = m.countryInput.Update(msg)
		}
	case PaneBatch:
		m.pathInput, cmd = m.pathInput.Update(msg)
	}
	return m, cmd
}

func (m *Model) scrollSummary(delta int) {
	maxScroll := len(m.outputSummary) - 10 // Approximate visible lines
	if maxScroll < 0 {
		maxScroll = 0
	}
	m.outputScrollOffset += delta
	if m.outputScrollOffset < 0 {
		m.outputScrollOffset = 0
	}
	if m.outputScrollOffset > maxScroll {
		m.outputScrollOffset = maxScroll
	}
}

// showSummaryPane opens the right pane the first time something is logged.
func (m *Model) showSummaryPane() {
	if m.showRightPane {
		return
	}
	m.showRightPane = true
	m.layoutPanes()
}
