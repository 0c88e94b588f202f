package processor

import (
	"strconv"

	"phone-validator/models"
	"phone-validator/parser"
)

const (
	NotAvailable = "N/A"
	NoReasoning  = "No reasoning provided"
	YesLabel     = "✓ Yes"
	NoLabel      = "✗ No"
	ValidBadge   = "✓ Valid"
	InvalidBadge = "✗ Invalid"
)

// SingleView is a validation result projected into display slots.
type SingleView struct {
	Valid           bool
	Badge           string
	Confidence      float64
	ConfidenceText  string
	BarWidth        string
	FormattedNumber string
	Country         string
	Carrier         string
	LineType        string
	WhatsApp        string
	AccountType     string
	Reasoning       string
	ProcessingTime  string
	Strategy        string
}

// Project fills every slot, using N/A for anything missing or empty.
func Project(r *models.ValidationResult) SingleView {
	var score float64
	if r.ConfidenceScore != nil {
		score = *r.ConfidenceScore
	}

	view := SingleView{
		Valid:           r.Success,
		Badge:           InvalidBadge,
		Confidence:      score,
		ConfidenceText:  parser.FormatScore(score),
		BarWidth:        strconv.FormatFloat(score, 'f', -1, 64) + "%",
		FormattedNumber: orNA(r.FormattedNumber),
		Country:         orNA(r.CountryCode),
		Carrier:         orNA(r.Carrier),
		LineType:        orNA(r.LineType),
		WhatsApp:        YesNo(r.WhatsAppAvailable),
		AccountType:     orNA(r.AccountType),
		Reasoning:       NoReasoning,
		ProcessingTime:  NotAvailable,
		Strategy:        orNA(r.ValidationStrategy),
	}

	if r.Success {
		view.Badge = ValidBadge
	}
	if r.Reasoning != nil && *r.Reasoning != "" {
		view.Reasoning = *r.Reasoning
	}
	if r.Metadata != nil && r.Metadata.ProcessingTimeMs != nil && *r.Metadata.ProcessingTimeMs != 0 {
		view.ProcessingTime = parser.FormatScore(*r.Metadata.ProcessingTimeMs) + "ms"
	}

	return view
}

func YesNo(b bool) string {
	if b {
		return YesLabel
	}
	return NoLabel
}

func orNA(s *string) string {
	if s == nil || *s == "" {
		return NotAvailable
	}
	return *s
}
