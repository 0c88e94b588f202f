package models

// ConfidenceTier is a coarse classification of a confidence score used
// for styling only.
type ConfidenceTier string

const (
	TierHigh   ConfidenceTier = "high"
	TierMedium ConfidenceTier = "medium"
	TierLow    ConfidenceTier = "low"
)

// BatchRow is one rendered line of a batch result.
type BatchRow struct {
	Phone      string         `json:"phone" yaml:"phone"`
	Formatted  string         `json:"formatted" yaml:"formatted"`
	Country    string         `json:"country" yaml:"country"`
	Carrier    string         `json:"carrier" yaml:"carrier"`
	WhatsApp   bool           `json:"whatsapp" yaml:"whatsapp"`
	Confidence float64        `json:"confidence" yaml:"confidence"`
	Tier       ConfidenceTier `json:"tier" yaml:"tier"`
}

// BatchTable is the parsed body of a batch response.
type BatchTable struct {
	Header []string   `json:"header" yaml:"header"`
	Rows   []BatchRow `json:"rows" yaml:"rows"`
}
