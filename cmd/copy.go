package cmd

import (
	"github.com/spf13/cobra"

	"depclip.dev/pkg/depclip/internal/domain"
	m "depclip.dev/pkg/depclip/internal/model"
)

// copyCmd represents the copy command.
var copyCmd = newCopyCmd()

func newCopyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "copy <file>",
		Short: "Copy a file and its local imports to the clipboard",
		Long:  copyLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			files, err := resolveClosure(m.Path(args[0]))
			if err != nil {
				return err
			}

			base := workingDir()
			ui.DisplayClosure(describeFiles(files, base))

			payload, err := domain.BuildPayload(fsAdapter, files, base)
			if err != nil {
				return err
			}

			if err := clipboardAdapter.Write(payload); err != nil {
				return err
			}

			ui.DisplayCopied(len(files))

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(copyCmd)
}
