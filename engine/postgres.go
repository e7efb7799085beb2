package engine

import (
	"github.com/yeajay0001/dquest/query/sqlgen"
)

const postgresMinVersion = "9.5.0"

// PostgresEngine is the PostgreSQL backend, driven by lib/pq.
type PostgresEngine struct {
	sqlEngine
}

// NewPostgresEngine creates an unopened PostgreSQL engine.
func NewPostgresEngine() *PostgresEngine {
	return &PostgresEngine{sqlEngine{
		name:         sqlgen.ProviderPostgres,
		builder:      &sqlgen.PostgresStatement{},
		versionQuery: "SHOW server_version;",
		minVersion:   postgresMinVersion,
	}}
}
