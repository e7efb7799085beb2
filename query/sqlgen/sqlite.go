package sqlgen

import (
	"fmt"

	"github.com/yeajay0001/dquest/schema"
)

// SQLiteStatement renders statements for SQLite, the default embedded
// backend.
type SQLiteStatement struct {
	statement
}

// CreateTableIfNotExists renders the guarded create-table statement.
func (s *SQLiteStatement) CreateTableIfNotExists(info schema.MetaInfo) string {
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s);",
		info.Name(), columnDefs(info, s.ColumnType, "INTEGER PRIMARY KEY AUTOINCREMENT"))
}

// ColumnType maps abstract field types to SQLite storage classes.
func (s *SQLiteStatement) ColumnType(f schema.Field) string {
	switch f.Type {
	case schema.TypeInt:
		return "INTEGER"
	case schema.TypeFloat:
		return "DOUBLE"
	case schema.TypeBool:
		return "BOOLEAN"
	case schema.TypeBytes:
		return "BLOB"
	case schema.TypeDateTime:
		return "DATETIME"
	default:
		return "TEXT"
	}
}

// TableExists probes sqlite_master for the model's table.
func (s *SQLiteStatement) TableExists(info schema.MetaInfo) string {
	return fmt.Sprintf("SELECT name FROM sqlite_master WHERE type='table' AND name='%s';", info.Name())
}

// CreateIndexIfNotExists renders the guarded create-index statement.
func (s *SQLiteStatement) CreateIndexIfNotExists(idx schema.Index) string {
	return createIndex(idx)
}

// DropIndexIfExists renders the guarded drop-index statement.
func (s *SQLiteStatement) DropIndexIfExists(name string) string {
	return fmt.Sprintf("DROP INDEX IF EXISTS %s;", name)
}
