// Command dquest is the CLI for the dquest ORM: it validates model
// definition files, renders their SQL and pushes tables to a database.
package main

import (
	"os"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/yeajay0001/dquest/cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
