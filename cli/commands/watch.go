package commands

import (
	"github.com/spf13/cobra"

	"github.com/yeajay0001/dquest/cli/internal/ui"
	"github.com/yeajay0001/dquest/internal/config"
	"github.com/yeajay0001/dquest/schema/parsing"
)

// newWatchCommand re-validates the model file on every change.
func newWatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch [schema]",
		Short: "Re-validate the model definition file on change",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := schemaPath(args)
			if err != nil {
				return err
			}

			watcher, err := config.NewWatcher(path, func() error {
				metas, err := parsing.ParseFile(path)
				if err != nil {
					ui.PrintError("%v", err)
					return nil // keep watching through parse errors
				}
				ui.PrintSuccess("%s: %d model(s) valid", path, len(metas))
				return nil
			})
			if err != nil {
				return err
			}
			defer watcher.Stop()

			ui.PrintInfo("watching %s, press Ctrl+C to stop", path)
			return watcher.Start()
		},
	}
}
