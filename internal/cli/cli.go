package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/ediref/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("ediref", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
ediref - A reference catalog for EDI document types across ANSI X12,
EDIFACT, TRADACOMS, VDA and RosettaNet.

Usage:
  ediref [options]

Options:
`)
		flagSet.PrintDefaults()
		fmt.Fprint(output, `
Examples:
  List all X12 documents:    ediref -s X12
  Search for invoices:       ediref -c INVOIC -a
  Show healthcare docs:      ediref -i healthcare
  View standard details:     ediref -l -d
`)
	}

	standardFlag := flagSet.String("standard", "", "Filter by EDI standard (e.g., 'X12' or 'EDIFACT').")
	sFlag := flagSet.String("s", "", "Filter by EDI standard (shorthand).")
	industryFlag := flagSet.String("industry", "", "Filter by industry (e.g., 'healthcare', 'automotive').")
	iFlag := flagSet.String("i", "", "Filter by industry (shorthand).")
	codeFlag := flagSet.String("code", "", "Search for an EDI document code. Partial matches are included.")
	cFlag := flagSet.String("c", "", "Search for an EDI document code (shorthand).")
	allFlag := flagSet.Bool("all", false, "In search mode, show every document regardless of code.")
	aFlag := flagSet.Bool("a", false, "In search mode, show every document (shorthand).")
	listFlag := flagSet.Bool("list-standards", false, "List all supported EDI standards.")
	lFlag := flagSet.Bool("l", false, "List all supported EDI standards (shorthand).")
	detailedFlag := flagSet.Bool("detailed", false, "Show detailed standard information.")
	dFlag := flagSet.Bool("d", false, "Show detailed standard information (shorthand).")
	noColorFlag := flagSet.Bool("no-color", false, "Disable bold section headers.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{
			Code:    2,
			Message: fmt.Sprintf("unexpected argument: %s", flagSet.Arg(0)),
		}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		StandardFilter: firstNonEmpty(*standardFlag, *sFlag),
		IndustryFilter: firstNonEmpty(*industryFlag, *iFlag),
		Code:           firstNonEmpty(*codeFlag, *cFlag),
		ShowAll:        *allFlag || *aFlag,
		ListStandards:  *listFlag || *lFlag,
		Detailed:       *detailedFlag || *dFlag,
		NoColor:        *noColorFlag,
		LogFormat:      logFormat,
		LogLevel:       logLevel,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// firstNonEmpty merges a flag's long and short spellings, with the long form
// winning when both are set.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
