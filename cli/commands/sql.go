package commands

import (
	"github.com/spf13/cobra"

	"github.com/yeajay0001/dquest/cli/internal/ui"
	"github.com/yeajay0001/dquest/query"
	"github.com/yeajay0001/dquest/query/sqlgen"
)

// newSQLCommand renders the statements dquest would execute for each
// model, without touching a database.
func newSQLCommand() *cobra.Command {
	var provider string

	cmd := &cobra.Command{
		Use:   "sql [schema]",
		Short: "Render the SQL statements for each model",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			metas, err := loadModels(args)
			if err != nil {
				ui.PrintError("%v", err)
				return err
			}

			builder := sqlgen.New(provider)
			for _, meta := range metas {
				ui.PrintInfo("model %s", meta.ClassName())
				ui.PrintStatement(builder.CreateTableIfNotExists(meta))
				ui.PrintStatement(builder.InsertInto(meta, false))
				ui.PrintStatement(builder.Select(query.New(meta).Rules()))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&provider, "provider", sqlgen.ProviderSQLite, "target dialect (sqlite, mysql, postgresql)")
	return cmd
}
