package api

import "fmt"

// Error is a request failure carrying the HTTP status code and any
// field-level validation detail the server returned.
type Error struct {
	StatusCode int                 // HTTP status code
	Message    string              // Server-provided message
	Fields     map[string][]string // Per-field validation errors, if any
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %s (status %d)", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("api: unexpected status %d", e.StatusCode)
}

// IsValidation reports whether the error carries field-level detail
func (e *Error) IsValidation() bool {
	return e.StatusCode == 422 || len(e.Fields) > 0
}
