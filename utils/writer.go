package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"phone-validator/models"
)

// BatchResultFilename names a re-downloaded batch after the UTC date.
func BatchResultFilename(now time.Time) string {
	return "validation_results_" + now.UTC().Format("2006-01-02") + ".csv"
}

type ResultWriter struct {
	indent int
}

func NewResultWriter() *ResultWriter {
	return &ResultWriter{
		indent: 2,
	}
}

// WriteBatchCSV stores the raw batch text as-is in outputDir and returns
// the written path.
func (w *ResultWriter) WriteBatchCSV(data, outputDir string, now time.Time) (string, error) {
	if err := EnsureDirectory(outputDir); err != nil {
		return "", err
	}

	filename := filepath.Join(outputDir, BatchResultFilename(now))
	if err := w.writeToFile(filename, []byte(data)); err != nil {
		return "", fmt.Errorf("writing %s: %w", filename, err)
	}
	return filename, nil
}

// WriteSingleResult exports one validation result as YAML.
func (w *ResultWriter) WriteSingleResult(result *models.ValidationResult, outputFile string) error {
	if dir := filepath.Dir(outputFile); dir != "." {
		if err := EnsureDirectory(dir); err != nil {
			return err
		}
	}

	file, err := os.Create(outputFile)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := yaml.NewEncoder(file)
	enc.SetIndent(w.indent)
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	return enc.Close()
}

func (w *ResultWriter) writeToFile(filename string, content []byte) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = file.Write(content)
	return err
}
