// Package runtime binds model types to shared database connections and
// executes generated statements through a pluggable storage engine.
package runtime

import (
	"errors"
	"fmt"
)

// Errors reported by connections.
var (
	// ErrNotOpen is returned when an operation requires an open
	// connection.
	ErrNotOpen = errors.New("connection not open")

	// ErrEngineOpen is returned by SetEngine while the connection is
	// open: engines cannot be hot-swapped on a live connection.
	ErrEngineOpen = errors.New("engine cannot be replaced while the connection is open")

	// ErrNilEngine is returned when a nil engine is installed.
	ErrNilEngine = errors.New("nil engine")

	// ErrNilModel is returned when a nil model is bound.
	ErrNilModel = errors.New("nil model metadata")
)

// StatementError reports a statement that failed to execute. The failed
// statement is also recorded as the connection's last query.
type StatementError struct {
	Statement string
	Cause     error
}

// Error implements the error interface.
func (e *StatementError) Error() string {
	return fmt.Sprintf("statement failed: %v: %s", e.Cause, e.Statement)
}

// Unwrap returns the underlying driver error.
func (e *StatementError) Unwrap() error { return e.Cause }
