package cmd

import (
	"github.com/spf13/cobra"

	m "depclip.dev/pkg/depclip/internal/model"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <file>",
		Short: "List the dependency closure without copying",
		Long:  listLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			files, err := resolveClosure(m.Path(args[0]))
			if err != nil {
				return err
			}

			ui.DisplayClosure(describeFiles(files, workingDir()))

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
}
