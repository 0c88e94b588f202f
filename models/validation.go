package models

// RequestContext identifies the caller of a validation request.
type RequestContext struct {
	UserID string `json:"user_id"`
	Source string `json:"source"`
}

// ValidateRequest is the body of POST /api/v1/validate.
type ValidateRequest struct {
	PhoneNumber string         `json:"phone_number"`
	CountryCode string         `json:"country_code"`
	Context     RequestContext `json:"context"`
}

type ConfidenceBreakdown struct {
	Score          float64            `json:"score" yaml:"score"`
	Classification string             `json:"classification" yaml:"classification"`
	Signals        map[string]float64 `json:"signals,omitempty" yaml:"signals,omitempty"`
	Recommendation string             `json:"recommendation" yaml:"recommendation"`
}

type ResultMetadata struct {
	ProcessingTimeMs *float64 `json:"processing_time_ms,omitempty" yaml:"processing_time_ms,omitempty"`
}

// ValidationResult is the response of POST /api/v1/validate. Optional
// fields stay nil when the server omits them.
type ValidationResult struct {
	Success             bool                 `json:"success" yaml:"success"`
	PhoneNumber         string               `json:"phone_number,omitempty" yaml:"phone_number,omitempty"`
	ConfidenceScore     *float64             `json:"confidence_score,omitempty" yaml:"confidence_score,omitempty"`
	FormattedNumber     *string              `json:"formatted_number,omitempty" yaml:"formatted_number,omitempty"`
	CountryCode         *string              `json:"country_code,omitempty" yaml:"country_code,omitempty"`
	Carrier             *string              `json:"carrier,omitempty" yaml:"carrier,omitempty"`
	LineType            *string              `json:"line_type,omitempty" yaml:"line_type,omitempty"`
	WhatsAppAvailable   bool                 `json:"whatsapp_available" yaml:"whatsapp_available"`
	AccountType         *string              `json:"account_type,omitempty" yaml:"account_type,omitempty"`
	Reasoning           *string              `json:"reasoning,omitempty" yaml:"reasoning,omitempty"`
	ValidationStrategy  *string              `json:"validation_strategy,omitempty" yaml:"validation_strategy,omitempty"`
	ConfidenceBreakdown *ConfidenceBreakdown `json:"confidence_breakdown,omitempty" yaml:"confidence_breakdown,omitempty"`
	Metadata            *ResultMetadata      `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}
