package tui

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phone-validator/client"
	"phone-validator/models"
	"phone-validator/processor"
	"phone-validator/testutil"
)

const batchResponse = "Original_Phone,Formatted_Number,Line_Type,Carrier,Country,WhatsApp_Available,Confidence_Score\n" +
	"'14155552671,+1 415-555-2671,mobile,AT&T,United States,True,82.5\n" +
	"5550100,5550100,unknown,unknown,US,False,20\n"

func newTestModel(t *testing.T, api *testutil.FakeAPI) Model {
	t.Helper()
	cfg := testutil.Config(t, api.Start(t))
	cfg.DownloadDir = t.TempDir()
	return NewModel(context.Background(), cfg)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func key(k tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: k} }

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return m
}

func writeCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// runUpload drives an upload to completion the way the program loop would.
func runUpload(t *testing.T, m Model, path string) Model {
	t.Helper()
	m.progress.Start()
	start, events := uploadBatchCmd(context.Background(), m.batch, path)
	m.batchEvents = events

	msg := start()
	for msg != nil {
		var cmd tea.Cmd
		m, cmd = update(t, m, msg)
		if _, done := msg.(BatchDoneMsg); done {
			break
		}
		require.NotNil(t, cmd)
		msg = cmd()
	}
	return m
}

func TestSingle_EmptyPhoneAlertsWithoutRequest(t *testing.T) {
	api := testutil.NewFakeAPI()
	m := newTestModel(t, api)

	m = typeText(t, m, "   ")
	m, cmd := update(t, m, key(tea.KeyEnter))

	assert.Nil(t, cmd)
	assert.Equal(t, alertPhoneRequired, m.alert)
	assert.False(t, m.button.Disabled)
	assert.Equal(t, 0, api.ValidateCalls())
}

func TestSingle_SubmitDisablesButton(t *testing.T) {
	m := newTestModel(t, testutil.NewFakeAPI())

	m = typeText(t, m, "+14155552671")
	m, cmd := update(t, m, key(tea.KeyEnter))

	assert.NotNil(t, cmd)
	assert.True(t, m.button.Disabled)
	assert.Equal(t, submitLoadingLabel, m.button.Label)

	again, cmd := update(t, m, key(tea.KeyEnter))
	assert.Nil(t, cmd, "a second submit while loading is ignored")
	assert.True(t, again.button.Disabled)
}

func TestSingle_ButtonRestoredOnEveryOutcome(t *testing.T) {
	outcomes := []struct {
		name  string
		msg   SingleResultMsg
		alert string
	}{
		{"success", SingleResultMsg{Result: &models.ValidationResult{Success: true}}, ""},
		{"api error", SingleResultMsg{Err: &client.APIError{StatusCode: 422, Detail: "Invalid phone number"}}, "Validation failed: Invalid phone number"},
		{"network error", SingleResultMsg{Err: client.ErrNetwork}, alertNetworkError},
	}

	for _, tc := range outcomes {
		t.Run(tc.name, func(t *testing.T) {
			m := newTestModel(t, testutil.NewFakeAPI())
			m.singleView = &processor.SingleView{Badge: processor.ValidBadge}
			m.button.Start()

			m, _ = update(t, m, tc.msg)
			assert.False(t, m.button.Disabled)
			assert.Equal(t, submitIdleLabel, m.button.Label)
			assert.Equal(t, tc.alert, m.alert)
			assert.Equal(t, tc.alert == "", m.singleView != nil, "a failure clears the previous result")
		})
	}
}

func TestSingle_EndToEndRendersResult(t *testing.T) {
	api := testutil.NewFakeAPI()
	api.ValidateBody = map[string]any{
		"success":          true,
		"phone_number":     "+14155552671",
		"confidence_score": 88.0,
		"carrier":          "AT&T",
	}
	m := newTestModel(t, api)

	msg := validateCmd(m.ctx, m.validator, "+14155552671", "US")()
	m, _ = update(t, m, msg)

	require.NotNil(t, m.singleView)
	assert.Equal(t, "88", m.singleView.ConfidenceText)
	assert.Equal(t, "AT&T", m.singleView.Carrier)
	assert.Equal(t, processor.NotAvailable, m.singleView.LineType)
	assert.Equal(t, "US", api.LastValidate().CountryCode)
	assert.Contains(t, m.View(), processor.ValidBadge)
	assert.True(t, m.showRightPane)
}

func TestAlert_BlocksInputUntilDismissed(t *testing.T) {
	m := newTestModel(t, testutil.NewFakeAPI())
	m.alert = alertNotCSV

	m, _ = update(t, m, key(tea.KeyF2))
	assert.Equal(t, PaneSingle, m.tabs.ActivePane())
	assert.Contains(t, m.View(), alertNotCSV)

	m, _ = update(t, m, key(tea.KeyEnter))
	assert.Empty(t, m.alert)

	m, _ = update(t, m, key(tea.KeyF2))
	assert.Equal(t, PaneBatch, m.tabs.ActivePane())
}

func TestTabs_MouseClickSwitchesPane(t *testing.T) {
	m := newTestModel(t, testutil.NewFakeAPI())

	x, y := m.tabBarOrigin()
	x += lipgloss.Width(renderTab(m.tabs.Tabs[0])) + len(tabGap) + 1

	m, _ = update(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, PaneBatch, m.tabs.ActivePane())
	assert.True(t, m.pathInput.Focused())
	assert.False(t, m.phoneInput.Focused())

	m, _ = update(t, m, tea.MouseMsg{X: x, Y: y + 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, PaneBatch, m.tabs.ActivePane(), "clicks outside the tab bar are ignored")
}

func TestBatch_RejectsNonCSV(t *testing.T) {
	api := testutil.NewFakeAPI()
	m := newTestModel(t, api)
	m, _ = update(t, m, key(tea.KeyF2))

	m = typeText(t, m, writeCSV(t, "numbers.xlsx", "x"))
	m, cmd := update(t, m, key(tea.KeyEnter))

	assert.Nil(t, cmd)
	assert.Equal(t, alertNotCSV, m.alert)
	assert.Equal(t, processor.PhaseIdle, m.progress.Phase)
	assert.Equal(t, 0, api.BatchCalls())
}

func TestBatch_SubmitStartsProgress(t *testing.T) {
	m := newTestModel(t, testutil.NewFakeAPI())
	m, _ = update(t, m, key(tea.KeyF2))

	m = typeText(t, m, "'"+writeCSV(t, "numbers.csv", "phone\n1\n")+"'")
	m, cmd := update(t, m, key(tea.KeyEnter))

	assert.NotNil(t, cmd)
	assert.Empty(t, m.alert)
	assert.Equal(t, "numbers.csv", m.batchFile)
	assert.True(t, m.progress.Active())
	assert.NotNil(t, m.batchEvents)
}

func TestBatch_UploadShowsTable(t *testing.T) {
	api := testutil.NewFakeAPI()
	api.BatchBody = batchResponse
	m := newTestModel(t, api)
	m, _ = update(t, m, key(tea.KeyF2))

	m = runUpload(t, m, writeCSV(t, "numbers.csv", "phone\n+14155552671\n5550100\n"))

	assert.Equal(t, processor.StatusComplete, m.status)
	assert.Equal(t, processor.PhaseDone, m.progress.Phase)
	assert.Equal(t, 1.0, m.progress.Percent)
	require.NotNil(t, m.table)
	require.Len(t, m.table.Rows, 2)
	assert.Equal(t, "14155552671", m.table.Rows[0].Phone)
	assert.Equal(t, models.TierHigh, m.table.Rows[0].Tier)
	assert.Equal(t, models.TierLow, m.table.Rows[1].Tier)

	view := m.View()
	assert.Contains(t, view, "AT&T")
	assert.Contains(t, view, "83%")

	_, cmd := update(t, m, TickMsg{ID: m.tickID})
	assert.Nil(t, cmd, "ticking stops once the upload ends")
}

func TestBatch_ServerErrorHidesTable(t *testing.T) {
	api := testutil.NewFakeAPI()
	api.BatchStatus = http.StatusInternalServerError
	api.BatchBody = `{"detail":"boom"}`
	m := newTestModel(t, api)

	m = runUpload(t, m, writeCSV(t, "numbers.csv", "phone\n1\n"))

	assert.Equal(t, processor.StatusServerError, m.status)
	assert.Equal(t, processor.PhaseFailed, m.progress.Phase)
	assert.Equal(t, 1.0, m.progress.Percent)
	assert.Nil(t, m.table)
	assert.Empty(t, m.alert)
}

func TestBatch_DownloadBeforeUploadIsNoop(t *testing.T) {
	m := newTestModel(t, testutil.NewFakeAPI())
	m, _ = update(t, m, key(tea.KeyF2))

	m, cmd := update(t, m, key(tea.KeyCtrlS))
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())

	assert.Empty(t, m.downloadPath)
	assert.Empty(t, m.alert)

	entries, err := os.ReadDir(m.cfg.DownloadDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestBatch_DownloadWritesResult(t *testing.T) {
	api := testutil.NewFakeAPI()
	api.BatchBody = batchResponse
	m := newTestModel(t, api)
	m, _ = update(t, m, key(tea.KeyF2))
	m = runUpload(t, m, writeCSV(t, "numbers.csv", "phone\n1\n"))

	m, cmd := update(t, m, key(tea.KeyCtrlS))
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())

	require.NotEmpty(t, m.downloadPath)
	assert.Equal(t, m.cfg.DownloadDir, filepath.Dir(m.downloadPath))
	got, err := os.ReadFile(m.downloadPath)
	require.NoError(t, err)
	assert.Equal(t, batchResponse, string(got))
}

func TestBatch_ResubmitDropsEarlierTick(t *testing.T) {
	api := testutil.NewFakeAPI()
	api.BatchBody = batchResponse
	m := newTestModel(t, api)
	m, _ = update(t, m, key(tea.KeyF2))

	path := writeCSV(t, "numbers.csv", "phone\n1\n")
	m = runUpload(t, m, path)
	earlier := TickMsg{ID: m.tickID}

	m = typeText(t, m, path)
	m, cmd := update(t, m, key(tea.KeyEnter))
	require.NotNil(t, cmd)
	require.True(t, m.progress.Active())

	_, cmd = update(t, m, earlier)
	assert.Nil(t, cmd, "a tick from the finished upload is not re-armed")

	_, cmd = update(t, m, TickMsg{ID: m.tickID})
	assert.NotNil(t, cmd, "the current upload keeps its own timer")
}

func TestBatch_EmptyResponseShowsNoTable(t *testing.T) {
	api := testutil.NewFakeAPI()
	api.BatchBody = ""
	m := newTestModel(t, api)
	m, _ = update(t, m, key(tea.KeyF2))

	m = runUpload(t, m, writeCSV(t, "numbers.csv", "phone\n1\n"))

	assert.Equal(t, processor.StatusComplete, m.status)
	assert.Nil(t, m.table)
	assert.Empty(t, m.alert)

	m, cmd := update(t, m, key(tea.KeyCtrlS))
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())
	assert.Empty(t, m.downloadPath, "nothing to save after an empty response")
}

func TestBatch_NetworkFailureKeepsBarPosition(t *testing.T) {
	m := newTestModel(t, testutil.NewFakeAPI())
	m.progress.Start()
	m.progress.Uploaded(300, 1000)

	m, _ = update(t, m, BatchDoneMsg{Err: fmt.Errorf("%w: connection reset", client.ErrNetwork)})

	assert.Equal(t, processor.StatusNetworkError, m.status)
	assert.Equal(t, processor.PhaseFailed, m.progress.Phase)
	assert.Equal(t, 0.3, m.progress.Percent)
}
