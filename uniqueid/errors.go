// uniqueid/errors.go
package uniqueid

import "fmt"

// ValidationError reports a required string argument that was empty or
// blank at a constructor or append call. It is always caller-correctable.
type ValidationError struct {
	// Argument names the offending parameter, e.g. "segmentType".
	Argument string
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s must not be empty or blank", e.Argument)
}

// FormatError reports a string that does not conform to the identifier
// grammar. Offset is the byte position in the original input where parsing
// failed.
type FormatError struct {
	Input  string
	Offset int
	Reason string
}

// Error implements the error interface for FormatError.
func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid unique ID %q: %s at offset %d", e.Input, e.Reason, e.Offset)
}
