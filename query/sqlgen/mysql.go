package sqlgen

import (
	"fmt"

	"github.com/yeajay0001/dquest/schema"
)

// MySQLStatement renders statements for MySQL.
//
// MySQL before 8.0 has no IF NOT EXISTS guard on CREATE INDEX and its
// DROP INDEX requires the table name; the generic index grammar is kept
// here and fails on such servers at execution time.
type MySQLStatement struct {
	statement
}

// CreateTableIfNotExists renders the guarded create-table statement.
func (s *MySQLStatement) CreateTableIfNotExists(info schema.MetaInfo) string {
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s);",
		info.Name(), columnDefs(info, s.ColumnType, "INTEGER PRIMARY KEY AUTO_INCREMENT"))
}

// ColumnType maps abstract field types to MySQL column types.
func (s *MySQLStatement) ColumnType(f schema.Field) string {
	switch f.Type {
	case schema.TypeInt:
		return "INTEGER"
	case schema.TypeFloat:
		return "DOUBLE"
	case schema.TypeBool:
		return "TINYINT(1)"
	case schema.TypeBytes:
		return "BLOB"
	case schema.TypeDateTime:
		return "DATETIME"
	default:
		return "VARCHAR(255)"
	}
}

// TableExists probes information_schema for the model's table in the
// current database.
func (s *MySQLStatement) TableExists(info schema.MetaInfo) string {
	return fmt.Sprintf("SELECT table_name FROM information_schema.tables WHERE table_schema=DATABASE() AND table_name='%s';", info.Name())
}

// CreateIndexIfNotExists renders the guarded create-index statement.
func (s *MySQLStatement) CreateIndexIfNotExists(idx schema.Index) string {
	return createIndex(idx)
}

// DropIndexIfExists renders the guarded drop-index statement.
func (s *MySQLStatement) DropIndexIfExists(name string) string {
	return fmt.Sprintf("DROP INDEX IF EXISTS %s;", name)
}
