// Package sqlgen generates SQL statements for different database
// providers. Generation is pure text synthesis: no I/O, no connection,
// only model metadata and query rules as input. Identifiers are taken
// as-is; sanitizing them is the metadata layer's responsibility, and a
// semantically invalid statement surfaces later as an execution error.
package sqlgen

import (
	"github.com/yeajay0001/dquest/query"
	"github.com/yeajay0001/dquest/schema"
)

// Supported providers.
const (
	ProviderSQLite   = "sqlite"
	ProviderMySQL    = "mysql"
	ProviderPostgres = "postgresql"
)

// StatementBuilder renders SQL statements for one dialect.
type StatementBuilder interface {
	// CreateTableIfNotExists renders the guarded create-table statement
	// for the model. Idempotent by construction: the guard is in the
	// statement text itself.
	CreateTableIfNotExists(info schema.MetaInfo) string

	// DropTable renders the unconditional drop statement.
	DropTable(info schema.MetaInfo) string

	// InsertInto renders a parameterized insert over the model's field
	// list. Each field binds to a placeholder named after it (field
	// `name` binds `:name`), so values bind by name, not position.
	// When withID is false the conventional "id" field is excluded.
	InsertInto(info schema.MetaInfo, withID bool) string

	// ReplaceInto renders the replace twin of InsertInto: identical
	// column and placeholder lists, different leading keyword.
	ReplaceInto(info schema.MetaInfo, withID bool) string

	// Select renders a select statement from the query rules.
	Select(rules query.Rules) string

	// DeleteFrom renders a delete statement from the query rules.
	// ORDER BY is not supported.
	DeleteFrom(rules query.Rules) string

	// CreateIndexIfNotExists renders the guarded create-index statement.
	CreateIndexIfNotExists(idx schema.Index) string

	// DropIndexIfExists renders the guarded drop-index statement.
	DropIndexIfExists(name string) string

	// TableExists renders a probe statement returning one row when the
	// model's table exists.
	TableExists(info schema.MetaInfo) string

	// ColumnType maps an abstract field type to the dialect column type.
	ColumnType(f schema.Field) string
}

// New creates a statement builder for the given provider. Unknown
// providers fall back to SQLite, the default embedded backend.
func New(provider string) StatementBuilder {
	switch provider {
	case ProviderPostgres, "postgres":
		return &PostgresStatement{}
	case ProviderMySQL:
		return &MySQLStatement{}
	case ProviderSQLite:
		return &SQLiteStatement{}
	default:
		return &SQLiteStatement{}
	}
}
