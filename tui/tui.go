package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"phone-validator/models"
)

// Run starts the TUI application. Requests still in flight are
// cancelled through ctx when the program exits.
func Run(ctx context.Context, cfg *models.Config) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := NewModel(ctx, cfg)

	// Alt screen and mouse support isolate the TUI and enable tab clicks
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}
