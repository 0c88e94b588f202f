package utils

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// CSVSuffix is the only file name ending accepted for batch uploads.
const CSVSuffix = ".csv"

// HasCSVSuffix checks the literal file name ending. It does not look at
// the content.
func HasCSVSuffix(filename string) bool {
	return strings.HasSuffix(filename, CSVSuffix)
}

// NormalizeDroppedPath cleans a path that a terminal pasted after a file
// was dragged onto it: surrounding quotes, a file:// prefix and
// backslash-escaped characters.
func NormalizeDroppedPath(input string) string {
	p := strings.TrimSpace(input)
	if len(p) >= 2 {
		if (p[0] == '"' && p[len(p)-1] == '"') || (p[0] == '\'' && p[len(p)-1] == '\'') {
			p = p[1 : len(p)-1]
		}
	}

	if strings.HasPrefix(p, "file://") {
		if u, err := url.Parse(p); err == nil && u.Path != "" {
			p = u.Path
		}
	}

	if strings.Contains(p, `\`) && filepath.Separator == '/' {
		var sb strings.Builder
		escaped := false
		for _, r := range p {
			if r == '\\' && !escaped {
				escaped = true
				continue
			}
			escaped = false
			sb.WriteRune(r)
		}
		p = sb.String()
	}

	return p
}

func ValidateFile(filename string) error {
	if filename == "" {
		return fmt.Errorf("filename cannot be empty")
	}

	info, err := os.Stat(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("file does not exist: %s", filename)
		}
		return fmt.Errorf("cannot access file %s: %w", filename, err)
	}

	if info.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", filename)
	}

	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("cannot open file %s: %w", filename, err)
	}
	defer file.Close()

	return nil
}

func EnsureDirectory(dirPath string) error {
	if dirPath == "" {
		return fmt.Errorf("directory path cannot be empty")
	}

	absPath, err := filepath.Abs(dirPath)
	if err != nil {
		return fmt.Errorf("cannot resolve absolute path for %s: %w", dirPath, err)
	}

	if err := os.MkdirAll(absPath, 0755); err != nil {
		return fmt.Errorf("cannot create directory %s: %w", absPath, err)
	}

	return nil
}

func FormatDuration(duration time.Duration) string {
	if duration < time.Second {
		return fmt.Sprintf("%d ms", duration.Milliseconds())
	}

	if duration < time.Minute {
		return fmt.Sprintf("%.1f sec", duration.Seconds())
	}

	if duration < time.Hour {
		return fmt.Sprintf("%.1f min", duration.Minutes())
	}

	return fmt.Sprintf("%.1f hrs", duration.Hours())
}

func FormatFileSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}

	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}

	units := []string{"KB", "MB", "GB", "TB", "PB"}
	return fmt.Sprintf("%.1f %s", float64(size)/float64(div), units[exp])
}

func FormatNumber(num int) string {
	if num < 1000 {
		return strconv.Itoa(num)
	}

	if num < 1000000 {
		return fmt.Sprintf("%.1fK", float64(num)/1000.0)
	}

	return fmt.Sprintf("%.1fM", float64(num)/1000000.0)
}

func TruncateString(s string, maxLength int) string {
	r := []rune(s)
	if len(r) <= maxLength {
		return s
	}

	if maxLength <= 3 {
		return string(r[:maxLength])
	}

	return string(r[:maxLength-3]) + "..."
}

// CalculateProgress returns current/total as a fraction in [0, 1].
func CalculateProgress(current, total int64) float64 {
	if total <= 0 {
		return 0.0
	}
	p := float64(current) / float64(total)
	if p > 1 {
		p = 1
	}
	return p
}

func FormatProgress(current, total int64) string {
	return fmt.Sprintf("%s / %s (%.0f%%)",
		FormatFileSize(current),
		FormatFileSize(total),
		CalculateProgress(current, total)*100)
}
