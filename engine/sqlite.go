package engine

import (
	"github.com/yeajay0001/dquest/query/sqlgen"
)

// minimum with CREATE INDEX IF NOT EXISTS and savepoint support
const sqliteMinVersion = "3.6.19"

// SQLiteEngine is the default embedded backend, driven by
// mattn/go-sqlite3.
type SQLiteEngine struct {
	sqlEngine
}

// NewSQLiteEngine creates an unopened SQLite engine.
func NewSQLiteEngine() *SQLiteEngine {
	return &SQLiteEngine{sqlEngine{
		name:         sqlgen.ProviderSQLite,
		builder:      &sqlgen.SQLiteStatement{},
		versionQuery: "SELECT sqlite_version();",
		minVersion:   sqliteMinVersion,
	}}
}
