// Package apperror defines the typed errors raised by the ledger and
// variance pipelines. All errors are raised synchronously at the offending
// operation and are never retried by the core.
package apperror

import "fmt"

// ValidationError represents a rejected mutation input, such as a
// non-positive transaction amount or a malformed date.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s='%s': %s", e.Field, e.Value, e.Reason)
}

// DuplicateError represents an attempt to add a resource that already exists,
// matched by exact (case-sensitive) name.
type DuplicateError struct {
	Resource string
	Name     string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s '%s' already exists", e.Resource, e.Name)
}

// NotFoundError represents a removal or lookup target that is absent.
type NotFoundError struct {
	Resource string
	Name     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s '%s' not found", e.Resource, e.Name)
}

// DataError represents data that cannot be aggregated or derived: an unset
// date in trend bucketing, a zero budget in a variance percentage, or a
// missing or unparseable required column in a tabular input.
// Row is zero-based; -1 means the error is not tied to a single row.
type DataError struct {
	Subject string
	Row     int
	Reason  string
	Err     error
}

func (e *DataError) Error() string {
	if e.Row >= 0 {
		return fmt.Sprintf("%s: row %d: %s", e.Subject, e.Row, e.Reason)
	}
	return fmt.Sprintf("%s: %s", e.Subject, e.Reason)
}

func (e *DataError) Unwrap() error {
	return e.Err
}
