// Package app wires the testid tool together: it validates the runtime
// configuration, builds the slog logger, constructs or parses the requested
// identifier through the uniqueid package, and renders the inspection
// report. All user-facing output flows through the writer supplied at
// construction time so the application is testable end to end.
package app
