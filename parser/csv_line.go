package parser

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"phone-validator/models"
)

var leadingFloatPattern = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`)

// SplitLine splits one CSV line into cells. A double quote toggles quoted
// mode and is dropped; commas inside quoted regions are kept. Escaped
// quotes ("") are not recognised.
func SplitLine(line string) []string {
	var cells []string
	var current strings.Builder
	inQuotes := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			cells = append(cells, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	cells = append(cells, current.String())

	return cells
}

// ParseConfidence reads the leading number of s, ignoring leading
// whitespace. Anything unparsable yields 0.
func ParseConfidence(s string) float64 {
	match := leadingFloatPattern.FindString(strings.TrimLeft(s, " \t"))
	if match == "" {
		return 0
	}
	v, err := strconv.ParseFloat(match, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Tier classifies a confidence score.
func Tier(score float64) models.ConfidenceTier {
	if score >= 70 {
		return models.TierHigh
	}
	if score >= 40 {
		return models.TierMedium
	}
	return models.TierLow
}

// FormatScore renders a score as an integer, rounding halves away from zero.
func FormatScore(score float64) string {
	return strconv.FormatFloat(math.Round(score), 'f', 0, 64)
}
