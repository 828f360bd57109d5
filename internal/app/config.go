// internal/app/config.go
package app

import "fmt"

// Config holds the validated configuration for one invocation of the tool.
// Exactly one of ID, EngineID, or RootSpec selects the starting identifier.
type Config struct {
	// ID is an identifier string to parse and inspect.
	ID string
	// EngineID constructs a root identifier for the named engine.
	EngineID string
	// RootSpec constructs a root identifier from a "type:value" pair.
	RootSpec string
	// Appends are "type:value" pairs appended in order to the starting
	// identifier before the report is rendered.
	Appends []string
	// LogFormat is "text" or "json".
	LogFormat string
	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string
}

// NewConfig validates the supplied configuration and returns it.
func NewConfig(cfg Config) (*Config, error) {
	sources := 0
	if cfg.ID != "" {
		sources++
	}
	if cfg.EngineID != "" {
		sources++
	}
	if cfg.RootSpec != "" {
		sources++
	}
	if sources == 0 {
		return nil, fmt.Errorf("an identifier, -engine, or -root is required")
	}
	if sources > 1 {
		return nil, fmt.Errorf("an identifier argument, -engine, and -root are mutually exclusive")
	}
	return &cfg, nil
}
