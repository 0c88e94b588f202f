package processor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"phone-validator/client"
	"phone-validator/models"
	"phone-validator/parser"
	"phone-validator/utils"
)

var (
	ErrNotCSV  = errors.New("please upload a CSV file")
	ErrNoBatch = errors.New("no batch results yet")
)

// Status lines shown under the batch progress bar.
const (
	StatusComplete     = "✓ Validation Complete!"
	StatusServerError  = "✗ Error processing file"
	StatusNetworkError = "✗ Network error"
)

// BatchUploader is the batch half of the API client.
type BatchUploader interface {
	ValidateBatch(ctx context.Context, filename string, r io.Reader, progress client.ProgressFunc) (string, error)
}

// BatchSession owns the most recent batch result text. It is replaced
// wholesale by each successful upload and read back for the table and
// for downloads.
type BatchSession struct {
	api    BatchUploader
	schema parser.Schema
	writer *utils.ResultWriter

	mu          sync.Mutex
	inFlight    bool
	data        string
	hasData     bool
	completedAt time.Time
}

func NewBatchSession(api BatchUploader, schema parser.Schema) *BatchSession {
	return &BatchSession{
		api:    api,
		schema: schema,
		writer: utils.NewResultWriter(),
	}
}

// Accept checks only that the name ends in ".csv".
func (s *BatchSession) Accept(filename string) error {
	if !utils.HasCSVSuffix(filename) {
		return ErrNotCSV
	}
	return nil
}

// Upload sends the file at path to the batch endpoint and stores the
// response text on success. The previous result survives a failed upload.
// An empty response replaces it with no batch.
func (s *BatchSession) Upload(ctx context.Context, path string, progress client.ProgressFunc) (string, error) {
	if err := s.Accept(filepath.Base(path)); err != nil {
		return "", err
	}
	if err := utils.ValidateFile(path); err != nil {
		return "", err
	}

	if !s.begin() {
		return "", ErrInFlight
	}
	defer s.end()

	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()

	text, err := s.api.ValidateBatch(ctx, path, file, progress)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.data = text
	s.hasData = text != ""
	s.completedAt = time.Now()
	s.mu.Unlock()

	return text, nil
}

// Data returns the stored batch text and whether a batch has completed.
func (s *BatchSession) Data() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data, s.hasData
}

func (s *BatchSession) CompletedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.completedAt
}

// Table parses the stored batch text.
func (s *BatchSession) Table() (*models.BatchTable, error) {
	data, ok := s.Data()
	if !ok {
		return nil, ErrNoBatch
	}
	return parser.ParseBatch(data, s.schema)
}

// Download writes the stored text to dir. With no completed batch it does
// nothing and returns an empty path.
func (s *BatchSession) Download(dir string, now time.Time) (string, error) {
	data, ok := s.Data()
	if !ok {
		return "", nil
	}
	return s.writer.WriteBatchCSV(data, dir, now)
}

func (s *BatchSession) InFlight() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight
}

func (s *BatchSession) begin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight {
		return false
	}
	s.inFlight = true
	return true
}

func (s *BatchSession) end() {
	s.mu.Lock()
	s.inFlight = false
	s.mu.Unlock()
}

// StatusFor maps an upload error to its status line.
func StatusFor(err error) string {
	switch {
	case err == nil:
		return StatusComplete
	case errors.Is(err, client.ErrNetwork):
		return StatusNetworkError
	default:
		return StatusServerError
	}
}
