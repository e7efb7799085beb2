package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yeajay0001/dquest/cli/internal/ui"
	"github.com/yeajay0001/dquest/internal/config"
	"github.com/yeajay0001/dquest/schema"
	"github.com/yeajay0001/dquest/schema/parsing"
)

// newValidateCommand parses a model definition file and reports what it
// found.
func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [schema]",
		Short: "Validate a model definition file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := schemaPath(args)
			if err != nil {
				return err
			}

			metas, err := parsing.ParseFile(path)
			if err != nil {
				ui.PrintError("%v", err)
				return err
			}

			rows := make([][]string, 0, len(metas))
			for _, meta := range metas {
				rows = append(rows, []string{
					meta.ClassName(), meta.Name(), fmt.Sprint(len(meta.Fields())),
				})
			}
			ui.ModelTable(rows)
			ui.PrintSuccess("%s: %d model(s) valid", path, len(metas))
			return nil
		},
	}
}

// schemaPath resolves the model file: explicit argument first, then the
// configured schema path.
func schemaPath(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	cfg, err := config.Load()
	if err != nil {
		return "", err
	}
	return cfg.SchemaPath, nil
}

// loadModels parses the model file into metadata.
func loadModels(args []string) ([]*schema.StaticMeta, error) {
	path, err := schemaPath(args)
	if err != nil {
		return nil, err
	}
	return parsing.ParseFile(path)
}
