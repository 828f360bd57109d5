// internal/cli/cli.go
package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/testid/internal/app"
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

// appendFlags collects repeated -append occurrences in order.
type appendFlags []string

func (a *appendFlags) String() string {
	return strings.Join(*a, ",")
}

func (a *appendFlags) Set(value string) error {
	*a = append(*a, value)
	return nil
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("testid", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
testid - Inspect and build hierarchical test-artifact identifiers.

Usage:
  testid [options] [UNIQUE_ID]

Arguments:
  UNIQUE_ID
    An identifier in canonical form, e.g. 'engine:[demo]/class:[Foo]'.

Options:
`)
		flagSet.PrintDefaults()
	}

	engineFlag := flagSet.String("engine", "", "Build a root identifier for the named engine.")
	rootFlag := flagSet.String("root", "", "Build a root identifier from a type:value pair.")
	var appends appendFlags
	flagSet.Var(&appends, "append", "Append a type:value segment. May be repeated.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	id := ""
	if flagSet.NArg() > 0 {
		id = flagSet.Arg(0)
	}

	if id == "" && *engineFlag == "" && *rootFlag == "" {
		slog.Debug("No identifier provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
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
		ID:        id,
		EngineID:  *engineFlag,
		RootSpec:  *rootFlag,
		Appends:   appends,
		LogFormat: logFormat,
		LogLevel:  logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
