package tui

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"phone-validator/parser"
	"phone-validator/processor"
	"phone-validator/utils"
)

const alertNotCSV = "Please upload a CSV file"

var batchHeaders = []string{"Phone", "Formatted", "Country", "Carrier", "WhatsApp", "Confidence"}

// Batch upload pane handlers
func (m Model) updateBatch(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m.submitBatch()
	case "ctrl+s":
		if m.progress.Active() {
			return m, nil
		}
		return m, downloadCmd(m.batch, m.cfg.DownloadDir)
	case "up":
		m.scrollTable(-1)
		return m, nil
	case "down":
		m.scrollTable(1)
		return m, nil
	}

	var cmd tea.Cmd
	m.pathInput, cmd = m.pathInput.Update(msg)
	return m, cmd
}

// submitBatch checks the chosen file and starts the upload.
func (m Model) submitBatch() (Model, tea.Cmd) {
	if m.progress.Active() {
		return m, nil
	}

	path := utils.NormalizeDroppedPath(m.pathInput.Value())
	if path == "" {
		return m, nil
	}

	name := filepath.Base(path)
	if err := m.batch.Accept(name); err != nil {
		m.alert = alertNotCSV
		return m, nil
	}
	if err := utils.ValidateFile(path); err != nil {
		m.alert = err.Error()
		return m, nil
	}

	m.pathInput.SetValue(path)
	m.batchFile = name
	m.status = ""
	m.downloadPath = ""
	m.table = nil
	m.tableOffset = 0
	m.progress.Start()
	m.tickID++

	start, events := uploadBatchCmd(m.ctx, m.batch, path)
	m.batchEvents = events

	return m, tea.Batch(start, tickCmd(m.cfg.TickInterval, m.tickID), m.spinner.Tick)
}

func (m Model) handleBatchProgress(msg BatchProgressMsg) (Model, tea.Cmd) {
	m.progress.Uploaded(msg.Sent, msg.Total)
	if m.batchEvents == nil {
		return m, nil
	}
	return m, waitForBatchEvent(m.batchEvents)
}

// handleBatchDone finishes the bar and shows the table on success. A
// failed upload leaves the previous result stored but hidden.
func (m Model) handleBatchDone(msg BatchDoneMsg) (Model, tea.Cmd) {
	m.batchEvents = nil
	m.progress.Finish(msg.Err)
	m.status = processor.StatusFor(msg.Err)

	m.showSummaryPane()
	m.addFormattedAction("Batch upload")
	m.addFormattedStatusIndented("File", m.batchFile)

	if msg.Err != nil {
		m.addFormattedStatusIndented("Status", "Failed")
		return m, nil
	}

	tbl, err := m.batch.Table()
	if errors.Is(err, processor.ErrNoBatch) {
		m.addFormattedStatusIndented("Status", "Completed with no results")
		return m, nil
	}
	if err != nil {
		m.alert = "Could not read results: " + err.Error()
		m.addFormattedStatusIndented("Status", "Completed with unreadable results")
		return m, nil
	}

	m.table = tbl
	m.tableOffset = 0
	m.addFormattedStatusIndented("Status", "Completed")
	m.addFormattedStatusIndented("Rows", utils.FormatNumber(len(tbl.Rows)))
	return m, nil
}

func (m Model) handleDownloadResult(msg DownloadResultMsg) (Model, tea.Cmd) {
	if msg.Err != nil {
		m.alert = "Download failed: " + msg.Err.Error()
		return m, nil
	}
	if msg.Path == "" {
		return m, nil
	}

	m.downloadPath = msg.Path
	m.showSummaryPane()
	m.addFormattedAction("Downloaded results")
	m.addFormattedStatusIndented("Saved", msg.Path)
	return m, nil
}

func (m *Model) scrollTable(delta int) {
	if m.table == nil {
		return
	}
	maxOffset := len(m.table.Rows) - m.visibleTableRows()
	if maxOffset < 0 {
		maxOffset = 0
	}
	m.tableOffset += delta
	if m.tableOffset < 0 {
		m.tableOffset = 0
	}
	if m.tableOffset > maxOffset {
		m.tableOffset = maxOffset
	}
}

func (m Model) visibleTableRows() int {
	rows := m.height - 22
	if rows < 5 {
		rows = 5
	}
	return rows
}

func (m Model) viewBatch() string {
	var s strings.Builder

	s.WriteString(m.renderField("CSV File", m.pathInput.View(), true) + "\n\n")

	if m.progress.Phase != processor.PhaseIdle {
		bar := m.progressBar.ViewAs(m.progress.Percent)
		if m.progress.Phase == processor.PhaseFailed {
			bar = m.failedBar.ViewAs(m.progress.Percent)
		}
		s.WriteString(bar + "\n")

		label := m.progress.Label()
		if m.progress.Active() {
			label = m.spinner.View() + " " + label
		}
		s.WriteString(progressTextStyle.Render(label) + "\n")
	}

	if m.status != "" {
		style := successStyle
		if m.progress.Phase == processor.PhaseFailed {
			style = errorStyle
		}
		s.WriteString(style.Render(m.status) + "\n")
	}
	s.WriteString("\n")

	if m.table != nil {
		s.WriteString(m.renderBatchTable() + "\n")
		if len(m.table.Rows) > m.visibleTableRows() {
			end := m.tableOffset + m.visibleTableRows()
			if end > len(m.table.Rows) {
				end = len(m.table.Rows)
			}
			s.WriteString(helpStyle.Render(fmt.Sprintf("rows %d-%d of %d", m.tableOffset+1, end, len(m.table.Rows))) + "\n")
		}
	}

	if m.downloadPath != "" {
		s.WriteString(successStyle.Render("Saved to "+m.downloadPath) + "\n")
	}

	return s.String()
}

// renderBatchTable draws the visible window of batch rows with a colored
// confidence dot per row.
func (m Model) renderBatchTable() string {
	end := m.tableOffset + m.visibleTableRows()
	if end > len(m.table.Rows) {
		end = len(m.table.Rows)
	}
	window := m.table.Rows[m.tableOffset:end]

	cells := make([][]string, 0, len(window))
	for _, row := range window {
		cells = append(cells, []string{
			utils.TruncateString(row.Phone, 18),
			utils.TruncateString(row.Formatted, 20),
			utils.TruncateString(row.Country, 16),
			utils.TruncateString(row.Carrier, 16),
			processor.YesNo(row.WhatsApp),
			"● " + parser.FormatScore(row.Confidence) + "%",
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tableBorderStyle).
		Headers(batchHeaders...).
		Rows(cells...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return tableHeaderStyle
			case col == len(batchHeaders)-1 && row < len(window):
				return tierStyle(window[row].Tier)
			default:
				return tableCellStyle
			}
		})

	return t.Render()
}
