package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"phone-validator/client"
	"phone-validator/models"
	"phone-validator/parser"
	"phone-validator/processor"
	"phone-validator/tui"
	"phone-validator/ui"
	"phone-validator/utils"
)

const defaultDebugLog = "phone-validator.log"

func main() {
	var (
		configFile = flag.String("config", "", "Path to a YAML configuration file")
		server     = flag.String("server", "", "Validation API base URL (overrides config and "+models.ServerEnvVar+")")
		phone      = flag.String("p", "", "Validate a single phone number and exit")
		country    = flag.String("c", "", "Two-letter country code hint for -p")
		file       = flag.String("f", "", "Upload a CSV file of phone numbers and exit")
		output     = flag.String("o", "", "Output: YAML file for -p, directory for -f")
		debug      = flag.Bool("debug", false, "Write a debug log (TUI mode logs to "+defaultDebugLog+" unless debug_log is set)")
		help       = flag.Bool("h", false, "Show help")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Phone Validator - Validate phone numbers against the validation API\n\n")
		fmt.Fprintf(os.Stderr, "Without -p or -f an interactive terminal UI starts with tabs for\n")
		fmt.Fprintf(os.Stderr, "single-number validation and CSV batch upload.\n\n")
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if *help {
		flag.Usage()
		return
	}

	cfg, err := loadConfig(*configFile, *server, *debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.ColorError("Configuration error: "+err.Error()))
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	switch {
	case *phone != "":
		err = runSingleMode(ctx, cfg, *phone, *country, *output)
	case *file != "":
		err = runBatchMode(ctx, cfg, *file, *output)
	default:
		err = runInteractiveMode(ctx, cfg)
	}
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, ui.ColorError("Error: "+describeError(err)))
		os.Exit(1)
	}
}

func loadConfig(path, server string, debug bool) (*models.Config, error) {
	cfg, err := models.LoadConfig(path)
	if err != nil {
		return nil, err
	}

	if server != "" {
		cfg.BaseURL = server
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	if debug && cfg.DebugLog == "" {
		cfg.DebugLog = defaultDebugLog
	}
	return cfg, nil
}

// runInteractiveMode starts the TUI. The log never reaches the terminal
// while the alt screen is active.
func runInteractiveMode(ctx context.Context, cfg *models.Config) error {
	if cfg.DebugLog != "" {
		f, err := tea.LogToFile(cfg.DebugLog, "phone-validator")
		if err != nil {
			return fmt.Errorf("opening debug log: %w", err)
		}
		defer f.Close()
		log.Printf("starting TUI against %s", cfg.BaseURL)
	} else {
		log.SetOutput(io.Discard)
	}

	return tui.Run(ctx, cfg)
}

func runSingleMode(ctx context.Context, cfg *models.Config, phone, country, output string) error {
	api := client.New(cfg)
	validator := processor.NewSingleValidator(api, cfg)

	ui.PrintBanner(os.Stdout, cfg.BaseURL)
	fmt.Printf(ui.ColorInfo("  Validating %s\n"), ui.ColorHighlight(phone))

	start := time.Now()
	result, err := validator.Validate(ctx, phone, country)
	if err != nil {
		return err
	}

	ui.PrintSingleResult(os.Stdout, processor.Project(result))
	fmt.Println(ui.ColorDimText("  Completed in " + utils.FormatDuration(time.Since(start))))

	if output != "" {
		if err := utils.NewResultWriter().WriteSingleResult(result, output); err != nil {
			return fmt.Errorf("writing %s: %w", output, err)
		}
		fmt.Printf(ui.ColorSuccess("Result written to: %s\n"), ui.ColorHighlight(output))
	}
	return nil
}

func runBatchMode(ctx context.Context, cfg *models.Config, path, outputDir string) error {
	path = utils.NormalizeDroppedPath(path)
	api := client.New(cfg)
	session := processor.NewBatchSession(api, parser.SchemaFromConfig(cfg.Columns, cfg.WhatsApp))

	ui.PrintBanner(os.Stdout, cfg.BaseURL)
	ui.PrintSectionHeader(os.Stdout, "Batch Upload")
	fmt.Printf(ui.ColorInfo("  File: %s\n"), ui.ColorHighlight(path))

	start := time.Now()
	_, err := session.Upload(ctx, path, func(sent, total int64) {
		fmt.Fprintf(os.Stderr, "\r  Uploading %s", utils.FormatProgress(sent, total))
		if sent >= total {
			fmt.Fprintf(os.Stderr, "\n  %s\n", processor.PhaseProcessing)
		}
	})
	if err != nil {
		fmt.Println(ui.ColorError("  " + processor.StatusFor(err)))
		ui.PrintSectionFooter(os.Stdout)
		return err
	}
	fmt.Println(ui.ColorSuccess("  " + processor.StatusComplete))
	fmt.Println(ui.ColorDimText("  Completed in " + utils.FormatDuration(time.Since(start))))
	ui.PrintSectionFooter(os.Stdout)

	table, err := session.Table()
	if errors.Is(err, processor.ErrNoBatch) {
		fmt.Println(ui.ColorWarning("  The server returned no results"))
		return nil
	}
	if err != nil {
		fmt.Println(ui.ColorWarning("  Could not read results: " + err.Error()))
	} else {
		ui.PrintBatchTable(os.Stdout, table)
		ui.PrintResultsSummary(os.Stdout, table)
	}

	if outputDir == "" {
		outputDir = cfg.DownloadDir
	}
	saved, err := session.Download(outputDir, time.Now())
	if err != nil {
		return err
	}
	fmt.Printf(ui.ColorSuccess("\nResults written to: %s\n"), ui.ColorHighlight(saved))
	return nil
}

func describeError(err error) string {
	var apiErr *client.APIError
	switch {
	case errors.As(err, &apiErr):
		return "validation failed: " + apiErr.Message()
	case errors.Is(err, client.ErrNetwork):
		return "network error, is the API reachable? (" + err.Error() + ")"
	default:
		return err.Error()
	}
}
