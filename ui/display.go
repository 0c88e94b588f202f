package ui

import (
	"fmt"
	"io"
	"strings"

	"phone-validator/models"
	"phone-validator/parser"
	"phone-validator/processor"
	"phone-validator/utils"
)

// ANSI color codes for terminal output
const (
	ColorReset   = "\033[0m"
	ColorBold    = "\033[1m"
	ColorDim     = "\033[2m"
	ColorRed     = "\033[31m"
	ColorGreen   = "\033[32m"
	ColorYellow  = "\033[33m"
	ColorBlue    = "\033[34m"
	ColorMagenta = "\033[35m"
	ColorCyan    = "\033[36m"
	ColorWhite   = "\033[37m"
)

// Color helper functions
func ColorTitle(text string) string     { return ColorCyan + ColorBold + text + ColorReset }
func ColorSuccess(text string) string   { return ColorGreen + ColorBold + text + ColorReset }
func ColorError(text string) string     { return ColorRed + ColorBold + text + ColorReset }
func ColorWarning(text string) string   { return ColorYellow + text + ColorReset }
func ColorInfo(text string) string      { return ColorWhite + text + ColorReset }
func ColorSection(text string) string   { return ColorBlue + ColorBold + text + ColorReset }
func ColorHighlight(text string) string { return ColorCyan + text + ColorReset }
func ColorDimText(text string) string   { return ColorDim + ColorWhite + text + ColorReset }

// ColorTier colors text by confidence tier.
func ColorTier(tier models.ConfidenceTier, text string) string {
	switch tier {
	case models.TierHigh:
		return ColorGreen + text + ColorReset
	case models.TierMedium:
		return ColorYellow + text + ColorReset
	default:
		return ColorRed + text + ColorReset
	}
}

const sectionWidth = 60

// PrintBanner displays the application banner
func PrintBanner(w io.Writer, server string) {
	fmt.Fprintln(w, ColorTitle("    ╔══════════════════════════════════════════════════╗"))
	fmt.Fprintln(w, ColorTitle("    ║  Phone Validator                                 ║"))
	fmt.Fprintln(w, ColorTitle("    ╚══════════════════════════════════════════════════╝"))
	fmt.Fprintln(w, ColorDimText("    API: "+server))
}

// PrintSectionHeader prints a formatted section header
func PrintSectionHeader(w io.Writer, title string) {
	headerContent := fmt.Sprintf("─ %s ", title)
	remainingWidth := sectionWidth - len([]rune(headerContent))
	if remainingWidth < 0 {
		remainingWidth = 0
	}
	fmt.Fprintln(w, ColorSection("┌"+headerContent+strings.Repeat("─", remainingWidth)+"┐"))
}

// PrintSectionFooter prints a formatted section footer
func PrintSectionFooter(w io.Writer) {
	fmt.Fprintln(w, ColorSection("└"+strings.Repeat("─", sectionWidth)+"┘"))
}

// PrintSingleResult prints every display slot of one validation.
func PrintSingleResult(w io.Writer, v processor.SingleView) {
	PrintSectionHeader(w, "Validation Result")

	badge := ColorError(v.Badge)
	if v.Valid {
		badge = ColorSuccess(v.Badge)
	}
	fmt.Fprintf(w, "  %s\n\n", badge)

	tier := parser.Tier(v.Confidence)
	printField(w, "Confidence", ColorTier(tier, v.ConfidenceText+"%")+ColorDimText(" ("+string(tier)+")"))
	printField(w, "Formatted", v.FormattedNumber)
	printField(w, "Country", v.Country)
	printField(w, "Carrier", v.Carrier)
	printField(w, "Line Type", v.LineType)
	printField(w, "WhatsApp", v.WhatsApp)
	printField(w, "Account Type", v.AccountType)
	printField(w, "Processing Time", v.ProcessingTime)
	printField(w, "Strategy", v.Strategy)
	printField(w, "Reasoning", v.Reasoning)

	PrintSectionFooter(w)
}

func printField(w io.Writer, label, value string) {
	fmt.Fprintf(w, "  %s %s\n", ColorSection(fmt.Sprintf("%-16s", label+":")), ColorInfo(value))
}

// PrintBatchTable prints the batch rows as aligned columns.
func PrintBatchTable(w io.Writer, table *models.BatchTable) {
	PrintSectionHeader(w, fmt.Sprintf("Batch Results (%s rows)", utils.FormatNumber(len(table.Rows))))

	fmt.Fprintf(w, "  %s\n", ColorHighlight(fmt.Sprintf("%-18s %-20s %-16s %-16s %-9s %s",
		"Phone", "Formatted", "Country", "Carrier", "WhatsApp", "Confidence")))

	for _, row := range table.Rows {
		score := parser.FormatScore(row.Confidence) + "%"
		fmt.Fprintf(w, "  %-18s %-20s %-16s %-16s %-9s %s\n",
			utils.TruncateString(row.Phone, 18),
			utils.TruncateString(row.Formatted, 20),
			utils.TruncateString(row.Country, 16),
			utils.TruncateString(row.Carrier, 16),
			processor.YesNo(row.WhatsApp),
			ColorTier(row.Tier, "● "+score))
	}

	PrintSectionFooter(w)
}

// PrintResultsSummary prints the tier counts of a batch.
func PrintResultsSummary(w io.Writer, table *models.BatchTable) {
	counts := map[models.ConfidenceTier]int{}
	for _, row := range table.Rows {
		counts[row.Tier]++
	}
	for _, tier := range []models.ConfidenceTier{models.TierHigh, models.TierMedium, models.TierLow} {
		if counts[tier] > 0 {
			fmt.Fprintf(w, "  %s: %s\n", ColorTier(tier, string(tier)), ColorHighlight(utils.FormatNumber(counts[tier])))
		} else {
			fmt.Fprintf(w, ColorDimText("  %s: none\n"), tier)
		}
	}
}
