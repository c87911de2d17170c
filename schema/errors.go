package schema

import "fmt"

// ValidationError reports a structural violation in supplied input, such
// as a non-positive duration or an inverted busy interval. Free-text
// parsing never produces one; only structured input is validated.
type ValidationError struct {
	Field  string // The offending field, e.g. "duration_minutes"
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NewValidationError builds a ValidationError for the given field.
func NewValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
