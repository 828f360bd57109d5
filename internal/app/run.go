// internal/app/run.go
package app

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/testid/uniqueid"
)

// App holds the output writer and logger for one invocation.
type App struct {
	out    io.Writer
	logger *slog.Logger
}

// New creates an App writing its report to outW and its logs to logW.
func New(outW, logW io.Writer, cfg *Config) *App {
	return &App{
		out:    outW,
		logger: newLogger(cfg.LogLevel, cfg.LogFormat, logW),
	}
}

// Run builds the requested identifier and renders the inspection report.
func (a *App) Run(cfg *Config) error {
	id, err := a.buildID(cfg)
	if err != nil {
		return err
	}
	a.report(id)
	return nil
}

// buildID resolves the starting identifier from the config and applies any
// -append derivations in order.
func (a *App) buildID(cfg *Config) (uniqueid.ID, error) {
	var id uniqueid.ID
	var err error
	switch {
	case cfg.EngineID != "":
		a.logger.Debug("Constructing engine root identifier.", "engine", cfg.EngineID)
		id, err = uniqueid.ForEngine(cfg.EngineID)
	case cfg.RootSpec != "":
		segmentType, value, pairErr := splitPair(cfg.RootSpec)
		if pairErr != nil {
			return uniqueid.ID{}, fmt.Errorf("invalid -root: %w", pairErr)
		}
		a.logger.Debug("Constructing root identifier.", "type", segmentType, "value", value)
		id, err = uniqueid.Root(segmentType, value)
	default:
		a.logger.Debug("Parsing identifier.", "input", cfg.ID)
		id, err = uniqueid.Parse(cfg.ID)
	}
	if err != nil {
		return uniqueid.ID{}, fmt.Errorf("building identifier: %w", err)
	}

	for _, pair := range cfg.Appends {
		segmentType, value, pairErr := splitPair(pair)
		if pairErr != nil {
			return uniqueid.ID{}, fmt.Errorf("invalid -append: %w", pairErr)
		}
		id, err = id.Append(segmentType, value)
		if err != nil {
			return uniqueid.ID{}, fmt.Errorf("appending %q: %w", pair, err)
		}
	}
	return id, nil
}

// report writes the canonical form, the segment listing, and the engine id
// (when present) to the output writer.
func (a *App) report(id uniqueid.ID) {
	fmt.Fprintln(a.out, id.String())
	for i, seg := range id.Segments() {
		fmt.Fprintf(a.out, "  %d. %s = %s\n", i+1, seg.Type(), seg.Value())
	}
	if engineID, ok := id.EngineID(); ok {
		fmt.Fprintf(a.out, "engine id: %s\n", engineID)
	}
}

// splitPair splits a "type:value" CLI argument on its first colon. Types
// containing a literal colon are not expressible on the command line; pass a
// fully formed identifier string instead.
func splitPair(pair string) (string, string, error) {
	segmentType, value, found := strings.Cut(pair, ":")
	if !found || segmentType == "" || value == "" {
		return "", "", fmt.Errorf("expected type:value, got %q", pair)
	}
	return segmentType, value, nil
}
