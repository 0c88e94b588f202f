package parser

import (
	"fmt"
	"strings"

	"phone-validator/models"
)

// Column is one logical field in a batch result row.
type Column int

const (
	ColPhone Column = iota
	ColFormatted
	ColCountry
	ColCarrier
	ColWhatsApp
	ColConfidence
	numColumns
)

var columnNames = [numColumns]string{"phone", "formatted", "country", "carrier", "whatsapp", "confidence"}

func (c Column) String() string {
	if c < 0 || c >= numColumns {
		return fmt.Sprintf("column(%d)", int(c))
	}
	return columnNames[c]
}

// MissingColumnError reports a header that lacks a column the schema needs.
type MissingColumnError struct {
	Column Column
	Header string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("batch results have no %q column for %s", e.Header, e.Column)
}

// BoolPolicy decides which cell values count as an affirmative flag.
type BoolPolicy struct {
	Accepted      []string
	CaseSensitive bool
}

// DefaultWhatsAppPolicy accepts exactly "True" and "TRUE".
var DefaultWhatsAppPolicy = BoolPolicy{Accepted: []string{"True", "TRUE"}, CaseSensitive: true}

func (p BoolPolicy) Parse(value string) bool {
	for _, lit := range p.Accepted {
		if p.CaseSensitive {
			if value == lit {
				return true
			}
		} else if strings.EqualFold(value, lit) {
			return true
		}
	}
	return false
}

// Schema maps logical columns onto cell positions, either by header name
// or by fixed index.
type Schema struct {
	ByPosition bool
	Names      [numColumns]string
	Indices    [numColumns]int
	WhatsApp   BoolPolicy
}

// NamedSchema resolves columns from the server's header names.
func NamedSchema() Schema {
	return SchemaFromConfig(models.DefaultColumns, models.DefaultConfig.WhatsApp)
}

// PositionalSchema uses the legacy fixed layout: phone 0, formatted 1,
// country 4, carrier 3, whatsapp 5, confidence 6.
func PositionalSchema() Schema {
	s := NamedSchema()
	s.ByPosition = true
	return s
}

func SchemaFromConfig(cols models.ColumnConfig, flag models.BoolFlagConfig) Schema {
	return Schema{
		ByPosition: cols.ByPosition,
		Names: [numColumns]string{
			cols.Phone, cols.Formatted, cols.Country, cols.Carrier, cols.WhatsApp, cols.Confidence,
		},
		Indices: [numColumns]int{
			cols.PhoneIndex, cols.FormattedIndex, cols.CountryIndex, cols.CarrierIndex, cols.WhatsAppIndex, cols.ConfidenceIndex,
		},
		WhatsApp: BoolPolicy{
			Accepted:      append([]string(nil), flag.Accepted...),
			CaseSensitive: flag.CaseSensitive,
		},
	}
}

// Resolve returns the cell index of every column for the given header.
func (s Schema) Resolve(header []string) ([numColumns]int, error) {
	if s.ByPosition {
		return s.Indices, nil
	}

	positions := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.TrimSpace(h)
		if _, seen := positions[name]; !seen {
			positions[name] = i
		}
	}

	var out [numColumns]int
	for c := Column(0); c < numColumns; c++ {
		idx, ok := positions[s.Names[c]]
		if !ok {
			return out, &MissingColumnError{Column: c, Header: s.Names[c]}
		}
		out[c] = idx
	}
	return out, nil
}

// ParseBatch turns a batch response body into table rows. The first line
// is the header; blank lines are skipped.
func ParseBatch(text string, schema Schema) (*models.BatchTable, error) {
	trimmed := strings.TrimSpace(text)
	table := &models.BatchTable{Rows: []models.BatchRow{}}
	if trimmed == "" {
		return table, nil
	}

	lines := strings.Split(trimmed, "\n")
	table.Header = SplitLine(strings.TrimSuffix(lines[0], "\r"))

	idx, err := schema.Resolve(table.Header)
	if err != nil {
		return nil, err
	}

	for _, line := range lines[1:] {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		cells := SplitLine(line)
		confidence := ParseConfidence(cell(cells, idx[ColConfidence]))
		table.Rows = append(table.Rows, models.BatchRow{
			Phone:      strings.ReplaceAll(cell(cells, idx[ColPhone]), "'", ""),
			Formatted:  cell(cells, idx[ColFormatted]),
			Country:    cell(cells, idx[ColCountry]),
			Carrier:    cell(cells, idx[ColCarrier]),
			WhatsApp:   schema.WhatsApp.Parse(cell(cells, idx[ColWhatsApp])),
			Confidence: confidence,
			Tier:       Tier(confidence),
		})
	}

	return table, nil
}

// cell returns "" for indices past the end of a short row.
func cell(cells []string, i int) string {
	if i < 0 || i >= len(cells) {
		return ""
	}
	return cells[i]
}
