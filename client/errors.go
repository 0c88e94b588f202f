package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrNetwork marks transport failures: the request never produced an
// HTTP response.
var ErrNetwork = errors.New("network error")

// UnknownErrorDetail is reported when the server gives no usable detail.
const UnknownErrorDetail = "Unknown error"

// APIError is an application-level failure: a non-2xx status or a
// response whose success flag is false.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("validation failed (status %d): %s", e.StatusCode, e.Message())
}

// Message returns the server detail or the generic fallback.
func (e *APIError) Message() string {
	if strings.TrimSpace(e.Detail) == "" {
		return UnknownErrorDetail
	}
	return e.Detail
}

// extractDetail pulls a human-readable message out of an error body.
// FastAPI sends either {"detail": "..."} or {"detail": [{"msg": ...}]}.
func extractDetail(body []byte) string {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		return ""
	}

	var text string
	if err := json.Unmarshal(envelope.Detail, &text); err == nil {
		return text
	}

	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(envelope.Detail, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, item := range items {
			if item.Msg != "" {
				msgs = append(msgs, item.Msg)
			}
		}
		return strings.Join(msgs, "; ")
	}

	return string(envelope.Detail)
}
