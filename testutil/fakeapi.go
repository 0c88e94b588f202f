// Package testutil provides a fake validation API for tests.
package testutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"

	"phone-validator/models"
)

// FakeAPI mimics the two validation endpoints. Set the response fields
// before Start; requests it receives are recorded for assertions.
type FakeAPI struct {
	ValidateStatus int
	ValidateBody   any

	BatchStatus      int
	BatchBody        string
	BatchContentType string

	// Gate, when non-nil, holds every response until it is closed.
	Gate chan struct{}

	mu              sync.Mutex
	validateCalls   int
	batchCalls      int
	lastValidate    models.ValidateRequest
	lastRequestID   string
	lastBatchName   string
	lastBatchBytes  []byte
	lastContentType string
}

func NewFakeAPI() *FakeAPI {
	return &FakeAPI{
		ValidateStatus:   http.StatusOK,
		BatchStatus:      http.StatusOK,
		BatchContentType: "text/csv",
	}
}

// Start serves the fake on a local listener closed at test cleanup.
func (f *FakeAPI) Start(t *testing.T) *httptest.Server {
	t.Helper()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.POST("/api/v1/validate", f.handleValidate)
	e.POST("/api/v1/validate/batch", f.handleBatch)

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return srv
}

func (f *FakeAPI) handleValidate(c echo.Context) error {
	var req models.ValidateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"detail": err.Error()})
	}

	f.mu.Lock()
	f.validateCalls++
	f.lastValidate = req
	f.lastRequestID = c.Request().Header.Get("X-Request-ID")
	f.mu.Unlock()

	f.wait()

	f.mu.Lock()
	status, body := f.ValidateStatus, f.ValidateBody
	f.mu.Unlock()

	if s, ok := body.(string); ok {
		return c.String(status, s)
	}
	return c.JSON(status, body)
}

func (f *FakeAPI) handleBatch(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"detail": "file is required"})
	}
	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return err
	}

	f.mu.Lock()
	f.batchCalls++
	f.lastBatchName = fh.Filename
	f.lastBatchBytes = data
	f.lastContentType = c.Request().Header.Get(echo.HeaderContentType)
	f.mu.Unlock()

	f.wait()

	f.mu.Lock()
	status, contentType, body := f.BatchStatus, f.BatchContentType, f.BatchBody
	f.mu.Unlock()

	return c.Blob(status, contentType, []byte(body))
}

// SetValidate changes the single-validation response of a running fake.
func (f *FakeAPI) SetValidate(status int, body any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ValidateStatus = status
	f.ValidateBody = body
}

// SetBatch changes the batch response of a running fake.
func (f *FakeAPI) SetBatch(status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.BatchStatus = status
	f.BatchBody = body
}

func (f *FakeAPI) wait() {
	if f.Gate != nil {
		<-f.Gate
	}
}

func (f *FakeAPI) ValidateCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.validateCalls
}

func (f *FakeAPI) BatchCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.batchCalls
}

func (f *FakeAPI) LastValidate() models.ValidateRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastValidate
}

func (f *FakeAPI) LastRequestID() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastRequestID
}

// LastBatch returns the uploaded filename and contents.
func (f *FakeAPI) LastBatch() (string, []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastBatchName, f.lastBatchBytes
}

func (f *FakeAPI) LastContentType() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastContentType
}

// Config returns a validated client config pointed at srv.
func Config(t *testing.T, srv *httptest.Server) *models.Config {
	t.Helper()
	cfg := models.NewConfig()
	cfg.BaseURL = srv.URL
	if err := cfg.Validate(); err != nil {
		t.Fatalf("config: %v", err)
	}
	return cfg
}
