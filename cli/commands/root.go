// Package commands implements the dquest CLI command tree.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/yeajay0001/dquest/internal/debug"
)

// Version is set at build time.
var Version = "dev"

var debugFlag bool

// Execute runs the root command.
func Execute() error {
	rootCmd := &cobra.Command{
		Use:     "dquest",
		Short:   "dquest ORM CLI",
		Long:    "dquest maps typed model definitions to relational tables and manages their database connections.",
		Version: Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			debug.Init(debugFlag)
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable diagnostic logging")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newValidateCommand())
	rootCmd.AddCommand(newSQLCommand())
	rootCmd.AddCommand(newDBCommand())
	rootCmd.AddCommand(newWatchCommand())
	rootCmd.AddCommand(newDocsCommand())

	return rootCmd.Execute()
}
