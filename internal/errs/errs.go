// Package errs defines the error taxonomy shared by the task and expense stores.
package errs

import "fmt"

// ValidationError reports caller input that violates a field constraint.
// Nothing is mutated when it is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Invalid returns a ValidationError for field.
func Invalid(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// NotFoundError reports a reference to a record that does not exist.
type NotFoundError struct {
	Kind string // "task" or "expense"
	ID   int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %d", e.Kind, e.ID)
}

// CorruptionError reports a backing document that exists but cannot be read
// as a task collection. Stores recover from it by starting empty; Backup is
// the copy of the unreadable document, if one was made.
type CorruptionError struct {
	Path   string
	Backup string
	Err    error
}

func (e *CorruptionError) Error() string {
	return fmt.Sprintf("unreadable document %s: %v", e.Path, e.Err)
}

func (e *CorruptionError) Unwrap() error { return e.Err }
