package tui

import (
	"context"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"phone-validator/client"
	"phone-validator/models"
	"phone-validator/parser"
	"phone-validator/processor"
)

// Focus targets inside the single validation pane
const (
	focusPhone = iota
	focusCountry
	focusSubmit
	focusCount
)

const (
	submitIdleLabel    = "Validate Now →"
	submitLoadingLabel = "Validating... ⏳"
)

// SubmitButton is the single validation trigger. It is disabled while a
// request is in flight and restored when the request ends on any path.
type SubmitButton struct {
	Disabled bool
	Label    string
}

func newSubmitButton() SubmitButton {
	return SubmitButton{Label: submitIdleLabel}
}

func (b *SubmitButton) Start() {
	b.Disabled = true
	b.Label = submitLoadingLabel
}

func (b *SubmitButton) Reset() {
	b.Disabled = false
	b.Label = submitIdleLabel
}

// Model represents the main TUI model
type Model struct {
	ctx    context.Context
	cfg    *models.Config
	width  int
	height int

	// Pane layout
	leftPaneWidth  int
	rightPaneWidth int
	showRightPane  bool

	tabs TabSet

	// Single validation
	validator    *processor.SingleValidator
	phoneInput   textinput.Model
	countryInput textinput.Model
	focus        int
	button       SubmitButton
	spinner      spinner.Model
	singleView   *processor.SingleView

	// Batch upload
	batch        *processor.BatchSession
	pathInput    textinput.Model
	batchFile    string
	batchEvents  <-chan tea.Msg
	progress     *processor.BatchProgress
	tickID       int
	progressBar  progress.Model
	failedBar    progress.Model
	status       string
	table        *models.BatchTable
	tableOffset  int
	downloadPath string

	// Modal alert, blocks input until dismissed
	alert string

	// Output summary for right pane
	outputSummary      []string
	outputScrollOffset int
}

// NewModel wires the model to a live API client built from cfg.
func NewModel(ctx context.Context, cfg *models.Config) Model {
	api := client.New(cfg)
	schema := parser.SchemaFromConfig(cfg.Columns, cfg.WhatsApp)
	return newModel(ctx, cfg,
		processor.NewSingleValidator(api, cfg),
		processor.NewBatchSession(api, schema),
	)
}

func newModel(ctx context.Context, cfg *models.Config, v *processor.SingleValidator, b *processor.BatchSession) Model {
	phone := textinput.New()
	phone.Placeholder = "+1 415 555 2671"
	phone.CharLimit = 32
	phone.Focus()

	country := textinput.New()
	country.Placeholder = "US (optional)"
	country.CharLimit = 2

	path := textinput.New()
	path.Placeholder = "drop or paste a .csv file path"
	path.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = highlightStyle

	return Model{
		ctx:           ctx,
		cfg:           cfg,
		tabs:          defaultTabSet(),
		validator:     v,
		phoneInput:    phone,
		countryInput:  country,
		focus:         focusPhone,
		button:        newSubmitButton(),
		spinner:       spin,
		batch:         b,
		pathInput:     path,
		progress:      processor.NewBatchProgress(rand.New(rand.NewSource(time.Now().UnixNano()))),
		progressBar:   progress.New(progress.WithDefaultGradient()),
		failedBar:     progress.New(progress.WithSolidFill(string(errorColor))),
		showRightPane: false,
		outputSummary: []string{},
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}
