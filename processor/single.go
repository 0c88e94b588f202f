package processor

import (
	"context"
	"errors"
	"strings"
	"sync"

	"phone-validator/models"
)

var (
	ErrPhoneRequired = errors.New("please enter a phone number")
	ErrInFlight      = errors.New("a request is already in progress")
)

// Validator is the single-number half of the API client.
type Validator interface {
	Validate(ctx context.Context, req models.ValidateRequest) (*models.ValidationResult, error)
}

// SingleValidator runs one validation at a time. A call made while
// another is outstanding is rejected with ErrInFlight.
type SingleValidator struct {
	api    Validator
	userID string
	source string

	mu       sync.Mutex
	inFlight bool
}

func NewSingleValidator(api Validator, cfg *models.Config) *SingleValidator {
	return &SingleValidator{
		api:    api,
		userID: cfg.UserID,
		source: cfg.Source,
	}
}

// Validate trims phone and sends it with the optional country code.
// An empty phone number sends nothing.
func (v *SingleValidator) Validate(ctx context.Context, phone, country string) (*models.ValidationResult, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, ErrPhoneRequired
	}

	if !v.begin() {
		return nil, ErrInFlight
	}
	defer v.end()

	return v.api.Validate(ctx, models.ValidateRequest{
		PhoneNumber: phone,
		CountryCode: country,
		Context: models.RequestContext{
			UserID: v.userID,
			Source: v.source,
		},
	})
}

func (v *SingleValidator) InFlight() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.inFlight
}

func (v *SingleValidator) begin() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.inFlight {
		return false
	}
	v.inFlight = true
	return true
}

func (v *SingleValidator) end() {
	v.mu.Lock()
	v.inFlight = false
	v.mu.Unlock()
}
