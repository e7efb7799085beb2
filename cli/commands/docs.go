package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yeajay0001/dquest/cli/internal/ui"
)

// newDocsCommand renders the project README in the terminal.
func newDocsCommand() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Render the documentation in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(path)
			if err != nil {
				ui.PrintError("cannot read %s: %v", path, err)
				return err
			}

			out, err := ui.RenderMarkdown(string(raw))
			if err != nil {
				return err
			}
			fmt.Print(out)
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "file", "README.md", "markdown file to render")
	return cmd
}
