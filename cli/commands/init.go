package commands

import (
	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/yeajay0001/dquest/cli/internal/ui"
	"github.com/yeajay0001/dquest/internal/config"
)

// newInitCommand sets up a dquest project interactively.
func newInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Set up dquest configuration interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := &config.Config{}

			questions := []*survey.Question{
				{
					Name: "provider",
					Prompt: &survey.Select{
						Message: "Database provider:",
						Options: []string{"sqlite", "mysql", "postgresql"},
						Default: "sqlite",
					},
				},
				{
					Name: "databaseurl",
					Prompt: &survey.Input{
						Message: "Database URL:",
						Default: "file:dquest.db",
					},
				},
				{
					Name: "schemapath",
					Prompt: &survey.Input{
						Message: "Model definition file:",
						Default: "models.dq",
					},
				},
			}

			answers := struct {
				Provider    string
				DatabaseURL string `survey:"databaseurl"`
				SchemaPath  string `survey:"schemapath"`
			}{}
			if err := survey.Ask(questions, &answers); err != nil {
				return err
			}

			cfg.Provider = answers.Provider
			cfg.DatabaseURL = answers.DatabaseURL
			cfg.SchemaPath = answers.SchemaPath

			if err := config.Save(cfg); err != nil {
				ui.PrintError("failed to save configuration: %v", err)
				return err
			}
			ui.PrintSuccess("configuration saved")
			return nil
		},
	}
}
