package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phone-validator/models"
)

const serverCSV = "Original_Phone,Formatted_Number,Line_Type,Carrier,Country,WhatsApp_Available,Confidence_Score,Validation_Trace\n" +
	"'14155552671,+1 415-555-2671,mobile,AT&T,United States,True,82.5,\"Immediate, provider ok\"\n" +
	"\n" +
	"'442071838750,+44 20 7183 8750,landline,BT,United Kingdom,False,35,Skipped\n"

func TestSplitLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{name: "plain", line: "a,b,c", want: []string{"a", "b", "c"}},
		{name: "quoted comma", line: `"555,1234",+15551234,x`, want: []string{"555,1234", "+15551234", "x"}},
		{name: "empty cells", line: ",,", want: []string{"", "", ""}},
		{name: "empty line", line: "", want: []string{""}},
		{name: "quotes dropped mid cell", line: `ab"c,d"e,f`, want: []string{"abc,de", "f"}},
		{name: "doubled quote is not an escape", line: `"a""b",c`, want: []string{"ab", "c"}},
		{name: "unterminated quote swallows rest", line: `"a,b,c`, want: []string{"a,b,c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitLine(tt.line))
		})
	}
}

func TestTier(t *testing.T) {
	assert.Equal(t, models.TierHigh, Tier(82.5))
	assert.Equal(t, models.TierHigh, Tier(70))
	assert.Equal(t, models.TierMedium, Tier(69.99))
	assert.Equal(t, models.TierMedium, Tier(40))
	assert.Equal(t, models.TierLow, Tier(39.9))
	assert.Equal(t, models.TierLow, Tier(0))
}

func TestParseConfidence(t *testing.T) {
	assert.Equal(t, 82.5, ParseConfidence("82.5"))
	assert.Equal(t, 82.5, ParseConfidence(" 82.5abc"))
	assert.Equal(t, 0.5, ParseConfidence(".5"))
	assert.Equal(t, 0.0, ParseConfidence(""))
	assert.Equal(t, 0.0, ParseConfidence("n/a"))
	assert.Equal(t, 0.0, ParseConfidence("NaN"))
}

func TestFormatScore(t *testing.T) {
	assert.Equal(t, "83", FormatScore(82.5))
	assert.Equal(t, "85", FormatScore(85))
	assert.Equal(t, "0", FormatScore(0.2))
}

func TestBoolPolicy(t *testing.T) {
	p := DefaultWhatsAppPolicy
	assert.True(t, p.Parse("True"))
	assert.True(t, p.Parse("TRUE"))
	assert.False(t, p.Parse("true"))
	assert.False(t, p.Parse("yes"))
	assert.False(t, p.Parse(""))

	loose := BoolPolicy{Accepted: []string{"true", "1"}, CaseSensitive: false}
	assert.True(t, loose.Parse("true"))
	assert.True(t, loose.Parse("TrUe"))
	assert.True(t, loose.Parse("1"))
	assert.False(t, loose.Parse("0"))
}

func TestParseBatch_Positional(t *testing.T) {
	text := "header1,header2,header3,header4,header5,header6,header7\n\"555,1234\",+15551234,x,CarrierX,US,True,82.5"

	table, err := ParseBatch(text, PositionalSchema())
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)

	row := table.Rows[0]
	assert.Equal(t, "555,1234", row.Phone)
	assert.Equal(t, "+15551234", row.Formatted)
	assert.Equal(t, "US", row.Country)
	assert.Equal(t, "CarrierX", row.Carrier)
	assert.True(t, row.WhatsApp)
	assert.Equal(t, 82.5, row.Confidence)
	assert.Equal(t, models.TierHigh, row.Tier)
}

func TestParseBatch_ByName(t *testing.T) {
	table, err := ParseBatch(serverCSV, NamedSchema())
	require.NoError(t, err)
	require.Len(t, table.Rows, 2)
	assert.Len(t, table.Header, 8)

	first := table.Rows[0]
	assert.Equal(t, "14155552671", first.Phone, "apostrophe prefix is stripped")
	assert.Equal(t, "+1 415-555-2671", first.Formatted)
	assert.Equal(t, "United States", first.Country)
	assert.Equal(t, "AT&T", first.Carrier)
	assert.True(t, first.WhatsApp)
	assert.Equal(t, models.TierHigh, first.Tier)

	second := table.Rows[1]
	assert.Equal(t, "United Kingdom", second.Country)
	assert.False(t, second.WhatsApp)
	assert.Equal(t, 35.0, second.Confidence)
	assert.Equal(t, models.TierLow, second.Tier)
}

func TestParseBatch_CRLF(t *testing.T) {
	text := "Original_Phone,Formatted_Number,Carrier,Country,WhatsApp_Available,Confidence_Score\r\n" +
		"1,+1,C,US,TRUE,50\r\n"

	table, err := ParseBatch(text, NamedSchema())
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
	assert.True(t, table.Rows[0].WhatsApp)
	assert.Equal(t, 50.0, table.Rows[0].Confidence)
	assert.Equal(t, models.TierMedium, table.Rows[0].Tier)
}

func TestParseBatch_MissingColumn(t *testing.T) {
	text := "Original_Phone,Formatted_Number,Country,Carrier,Confidence_Score\n1,2,3,4,5"

	_, err := ParseBatch(text, NamedSchema())
	require.Error(t, err)

	var missing *MissingColumnError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, ColWhatsApp, missing.Column)
	assert.Equal(t, "WhatsApp_Available", missing.Header)
}

func TestParseBatch_ShortRowsAndCaseSensitiveFlag(t *testing.T) {
	text := "h0,h1,h2,h3,h4,h5,h6\n" +
		"a,b,c,d,e,true,10\n" +
		"a,b\n"

	table, err := ParseBatch(text, PositionalSchema())
	require.NoError(t, err)
	require.Len(t, table.Rows, 2)

	assert.False(t, table.Rows[0].WhatsApp, "lower-case true is not affirmative")
	assert.Equal(t, "", table.Rows[1].Carrier)
	assert.Equal(t, 0.0, table.Rows[1].Confidence)
	assert.Equal(t, models.TierLow, table.Rows[1].Tier)
}

func TestParseBatch_Empty(t *testing.T) {
	table, err := ParseBatch("  \n", NamedSchema())
	require.NoError(t, err)
	assert.Empty(t, table.Rows)

	table, err = ParseBatch("Original_Phone,Formatted_Number,Country,Carrier,WhatsApp_Available,Confidence_Score", NamedSchema())
	require.NoError(t, err)
	assert.Empty(t, table.Rows)
}

func TestSchemaFromConfig_CustomNames(t *testing.T) {
	cols := models.DefaultColumns
	cols.Phone = "msisdn"
	schema := SchemaFromConfig(cols, models.BoolFlagConfig{Accepted: []string{"yes"}})

	text := "msisdn,Formatted_Number,Country,Carrier,WhatsApp_Available,Confidence_Score\n555,+555,US,C,Yes,71"
	table, err := ParseBatch(text, schema)
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "555", table.Rows[0].Phone)
	assert.True(t, table.Rows[0].WhatsApp)
}
