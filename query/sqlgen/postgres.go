package sqlgen

import (
	"fmt"

	"github.com/yeajay0001/dquest/schema"
)

// PostgresStatement renders statements for PostgreSQL.
type PostgresStatement struct {
	statement
}

// CreateTableIfNotExists renders the guarded create-table statement.
func (s *PostgresStatement) CreateTableIfNotExists(info schema.MetaInfo) string {
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s);",
		info.Name(), columnDefs(info, s.ColumnType, "SERIAL PRIMARY KEY"))
}

// ColumnType maps abstract field types to PostgreSQL column types.
func (s *PostgresStatement) ColumnType(f schema.Field) string {
	switch f.Type {
	case schema.TypeInt:
		return "INTEGER"
	case schema.TypeFloat:
		return "DOUBLE PRECISION"
	case schema.TypeBool:
		return "BOOLEAN"
	case schema.TypeBytes:
		return "BYTEA"
	case schema.TypeDateTime:
		return "TIMESTAMP"
	default:
		return "TEXT"
	}
}

// TableExists probes pg_tables for the model's table.
func (s *PostgresStatement) TableExists(info schema.MetaInfo) string {
	return fmt.Sprintf("SELECT tablename FROM pg_tables WHERE tablename='%s';", info.Name())
}

// CreateIndexIfNotExists renders the guarded create-index statement.
func (s *PostgresStatement) CreateIndexIfNotExists(idx schema.Index) string {
	return createIndex(idx)
}

// DropIndexIfExists renders the guarded drop-index statement.
func (s *PostgresStatement) DropIndexIfExists(name string) string {
	return fmt.Sprintf("DROP INDEX IF EXISTS %s;", name)
}
