package engine

import (
	"github.com/yeajay0001/dquest/query/sqlgen"
)

const mysqlMinVersion = "5.6.0"

// MySQLEngine is the MySQL backend, driven by go-sql-driver/mysql.
type MySQLEngine struct {
	sqlEngine
}

// NewMySQLEngine creates an unopened MySQL engine.
func NewMySQLEngine() *MySQLEngine {
	return &MySQLEngine{sqlEngine{
		name:         sqlgen.ProviderMySQL,
		builder:      &sqlgen.MySQLStatement{},
		versionQuery: "SELECT VERSION();",
		minVersion:   mysqlMinVersion,
	}}
}
