package tui

import (
	"context"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"phone-validator/models"
	"phone-validator/processor"
)

// SingleResultMsg carries the outcome of one validation request.
type SingleResultMsg struct {
	Result *models.ValidationResult
	Err    error
}

// BatchProgressMsg reports measured upload progress.
type BatchProgressMsg struct {
	Sent  int64
	Total int64
}

// BatchDoneMsg ends an upload with the response text or an error.
type BatchDoneMsg struct {
	Text string
	Err  error
}

// DownloadResultMsg reports where the batch result was saved. An empty
// path means there was nothing to save.
type DownloadResultMsg struct {
	Path string
	Err  error
}

// validateCmd creates a command to validate a single number
func validateCmd(ctx context.Context, v *processor.SingleValidator, phone, country string) tea.Cmd {
	return func() tea.Msg {
		result, err := v.Validate(ctx, phone, country)
		return SingleResultMsg{Result: result, Err: err}
	}
}

// uploadBatchCmd starts the upload in the background and returns the
// channel its events arrive on. The channel closes after BatchDoneMsg.
func uploadBatchCmd(ctx context.Context, s *processor.BatchSession, path string) (tea.Cmd, <-chan tea.Msg) {
	events := make(chan tea.Msg, 64)

	start := func() tea.Msg {
		go func() {
			defer close(events)
			begun := time.Now()
			text, err := s.Upload(ctx, path, func(sent, total int64) {
				msg := BatchProgressMsg{Sent: sent, Total: total}
				if sent >= total {
					events <- msg
					return
				}
				select {
				case events <- msg:
				default:
				}
			})
			if err != nil {
				log.Printf("batch upload of %s failed after %s: %v", path, time.Since(begun).Round(time.Millisecond), err)
			}
			events <- BatchDoneMsg{Text: text, Err: err}
		}()
		return waitForBatchEvent(events)()
	}

	return start, events
}

// waitForBatchEvent blocks until the next upload event.
func waitForBatchEvent(events <-chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-events
		if !ok {
			return nil
		}
		return msg
	}
}

// downloadCmd writes the stored batch result to dir
func downloadCmd(s *processor.BatchSession, dir string) tea.Cmd {
	return func() tea.Msg {
		path, err := s.Download(dir, time.Now())
		return DownloadResultMsg{Path: path, Err: err}
	}
}
