// Package engine defines the pluggable storage engine abstraction: a
// backend owning zero or one open physical connection plus the set of
// model types bound to it.
package engine

import (
	"database/sql"
	"errors"

	"github.com/yeajay0001/dquest/query/sqlgen"
	"github.com/yeajay0001/dquest/schema"
)

// Errors reported by engines.
var (
	// ErrNotOpen is returned when an operation needs an open engine.
	ErrNotOpen = errors.New("engine not open")

	// ErrNilModel is returned when a nil model is bound.
	ErrNilModel = errors.New("nil model metadata")

	// ErrUnsupportedVersion is returned when the server is older than
	// the minimum the engine supports.
	ErrUnsupportedVersion = errors.New("unsupported server version")
)

// Engine is a pluggable storage backend. An engine is created empty,
// opened against a live database handle, accumulates bound models and
// can be closed again. Closing releases the physical handle but keeps
// the bound models.
type Engine interface {
	// Name returns the provider name, e.g. "sqlite".
	Name() string

	// Open binds the engine to a live database handle.
	Open(db *sql.DB) error

	// Close releases the physical handle. Bound models are kept.
	Close() error

	// IsOpen reports whether the engine holds a physical handle.
	IsOpen() bool

	// AddModel binds a model type to the engine. Binding the same model
	// twice is a no-op.
	AddModel(info schema.MetaInfo) error

	// Models returns the bound model types in binding order.
	Models() []schema.MetaInfo

	// Builder returns the statement builder for the engine's dialect.
	Builder() sqlgen.StatementBuilder
}

// New creates an engine for the given provider. Unknown providers fall
// back to SQLite.
func New(provider string) Engine {
	switch provider {
	case sqlgen.ProviderPostgres, "postgres":
		return NewPostgresEngine()
	case sqlgen.ProviderMySQL:
		return NewMySQLEngine()
	default:
		return NewSQLiteEngine()
	}
}

// DriverName maps a provider name to the database/sql driver name.
func DriverName(provider string) string {
	switch provider {
	case sqlgen.ProviderPostgres, "postgres":
		return "postgres"
	case sqlgen.ProviderMySQL:
		return "mysql"
	case sqlgen.ProviderSQLite:
		return "sqlite3"
	default:
		return ""
	}
}
