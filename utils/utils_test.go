package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"phone-validator/models"
)

func TestHasCSVSuffix(t *testing.T) {
	assert.True(t, HasCSVSuffix("numbers.csv"))
	assert.True(t, HasCSVSuffix("/tmp/dir.with.dots/x.csv"))
	assert.False(t, HasCSVSuffix("numbers.CSV"), "suffix check is literal")
	assert.False(t, HasCSVSuffix("numbers.csv.txt"))
	assert.False(t, HasCSVSuffix("numbers"))
}

func TestNormalizeDroppedPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "  /tmp/a.csv \n", want: "/tmp/a.csv"},
		{in: `'/tmp/my file.csv'`, want: "/tmp/my file.csv"},
		{in: `"/tmp/my file.csv"`, want: "/tmp/my file.csv"},
		{in: `/tmp/my\ file.csv`, want: "/tmp/my file.csv"},
		{in: "file:///tmp/my%20file.csv", want: "/tmp/my file.csv"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if filepath.Separator != '/' {
				t.Skip("escape handling is POSIX only")
			}
			assert.Equal(t, tt.want, NormalizeDroppedPath(tt.in))
		})
	}
}

func TestValidateFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.csv")
	require.NoError(t, os.WriteFile(path, []byte("phone\n1\n"), 0644))

	assert.NoError(t, ValidateFile(path))
	assert.Error(t, ValidateFile(""))
	assert.Error(t, ValidateFile(filepath.Join(dir, "missing.csv")))
	assert.Error(t, ValidateFile(dir))
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "512 B", FormatFileSize(512))
	assert.Equal(t, "1.5 KB", FormatFileSize(1536))
	assert.Equal(t, "250 ms", FormatDuration(250*time.Millisecond))
	assert.Equal(t, "1.5 sec", FormatDuration(1500*time.Millisecond))
	assert.Equal(t, "12", FormatNumber(12))
	assert.Equal(t, "1.5K", FormatNumber(1500))
	assert.Equal(t, "ab...", TruncateString("abcdef", 5))
}

func TestCalculateProgress(t *testing.T) {
	assert.Equal(t, 0.0, CalculateProgress(5, 0))
	assert.Equal(t, 0.5, CalculateProgress(5, 10))
	assert.Equal(t, 1.0, CalculateProgress(15, 10))
	assert.Equal(t, "512 B / 1.0 KB (50%)", FormatProgress(512, 1024))
}

func TestBatchResultFilename(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	now := time.Date(2026, 10, 15, 5, 0, 0, 0, loc)
	assert.Equal(t, "validation_results_2026-10-14.csv", BatchResultFilename(now), "date is taken in UTC")
}

func TestResultWriter_WriteBatchCSV(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	now := time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)
	data := "Original_Phone,Confidence_Score\n'1,80\n"

	path, err := NewResultWriter().WriteBatchCSV(data, dir, now)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "validation_results_2026-10-14.csv"), path)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, data, string(got))
}

func TestResultWriter_WriteSingleResult(t *testing.T) {
	score := 85.0
	carrier := "AT&T"
	result := &models.ValidationResult{
		Success:         true,
		PhoneNumber:     "+14155552671",
		ConfidenceScore: &score,
		Carrier:         &carrier,
	}

	path := filepath.Join(t.TempDir(), "nested", "result.yaml")
	require.NoError(t, NewResultWriter().WriteSingleResult(result, path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded models.ValidationResult
	require.NoError(t, yaml.Unmarshal(raw, &decoded))
	assert.True(t, decoded.Success)
	assert.Equal(t, "AT&T", *decoded.Carrier)
	assert.Nil(t, decoded.LineType)
}
