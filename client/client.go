package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"phone-validator/models"
)

const (
	ValidatePath      = "/api/v1/validate"
	ValidateBatchPath = "/api/v1/validate/batch"

	// BatchFormField is the multipart field carrying the CSV file.
	BatchFormField = "file"

	RequestIDHeader = "X-Request-ID"
)

// ProgressFunc reports upload progress: bytes sent so far out of total.
type ProgressFunc func(sent, total int64)

// Client talks to the validation API.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	timeout      time.Duration
	batchTimeout time.Duration
}

func New(cfg *models.Config) *Client {
	return &Client{
		baseURL:      cfg.BaseURL,
		httpClient:   &http.Client{},
		timeout:      cfg.Timeout,
		batchTimeout: cfg.BatchTimeout,
	}
}

// Validate sends one number to the single-validation endpoint. It
// succeeds only when the status is 2xx and the body reports success.
func (c *Client) Validate(ctx context.Context, req models.ValidateRequest) (*models.ValidationResult, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+ValidatePath, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set(RequestIDHeader, uuid.NewString())

	body, status, err := c.do(httpReq)
	if err != nil {
		return nil, err
	}

	var result models.ValidationResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, &APIError{StatusCode: status, Detail: extractDetail(body)}
	}

	if status < 200 || status > 299 || !result.Success {
		return nil, &APIError{StatusCode: status, Detail: extractDetail(body)}
	}

	return &result, nil
}

// ValidateBatch uploads a CSV file and returns the raw CSV response body.
// progress, when non-nil, is called as the request body is consumed.
func (c *Client) ValidateBatch(ctx context.Context, filename string, r io.Reader, progress ProgressFunc) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(BatchFormField, filepath.Base(filename))
	if err != nil {
		return "", fmt.Errorf("building upload: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", fmt.Errorf("reading %s: %w", filename, err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("building upload: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.batchTimeout)
	defer cancel()

	total := int64(buf.Len())
	body := newProgressReader(bytes.NewReader(buf.Bytes()), total, progress)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+ValidateBatchPath, body)
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	httpReq.ContentLength = total
	httpReq.Header.Set("Content-Type", mw.FormDataContentType())
	httpReq.Header.Set(RequestIDHeader, uuid.NewString())

	respBody, status, err := c.do(httpReq)
	if err != nil {
		return "", err
	}

	if status < 200 || status > 299 {
		return "", &APIError{StatusCode: status, Detail: extractDetail(respBody)}
	}

	return string(respBody), nil
}

func (c *Client) do(req *http.Request) ([]byte, int, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("request %s %s failed: %v", req.Method, req.URL.Path, err)
		return nil, 0, fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("reading response of %s failed: %v", req.URL.Path, err)
		return nil, resp.StatusCode, fmt.Errorf("%w: reading response: %w", ErrNetwork, err)
	}

	return body, resp.StatusCode, nil
}
