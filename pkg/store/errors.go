package store

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingInput is returned when a required input file or database
	// is absent. Nothing is touched in that case.
	ErrMissingInput = errors.New("required input not found")

	// ErrRowCountMismatch is returned when a table's post-load row count
	// differs from its CSV row count. The load transaction is rolled back.
	ErrRowCountMismatch = errors.New("row count mismatch after load")

	// ErrEmptyQuery is returned when the report query is blank.
	ErrEmptyQuery = errors.New("report query is empty")
)

// LoadError wraps a failure while loading one table.
type LoadError struct {
	Table string
	Err   error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	return fmt.Sprintf("loading table %s: %v", e.Table, e.Err)
}

// Unwrap returns the underlying error.
func (e *LoadError) Unwrap() error {
	return e.Err
}
