package controller

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "depclip.dev/pkg/depclip/internal/model"
)

// SimpleUI implements UI using cobra Command's Println.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayClosure prints the closure listing as a table.
func (s *SimpleUI) DisplayClosure(files []m.File) {
	s.printf("\n%s", renderClosureTable(files))
}

// DisplayCopied confirms the clipboard write.
func (s *SimpleUI) DisplayCopied(fileCount int) {
	s.printf("Copied %d file(s) and their contents to the clipboard\n", fileCount)
}

func renderClosureTable(files []m.File) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Bytes"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	var totalBytes int64

	for _, file := range files {
		table.Append([]string{string(file.ShortPath), fmt.Sprintf("%d", file.Size)})

		totalBytes += file.Size
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(files)),
		fmt.Sprintf("%d", totalBytes),
	})

	table.Render()

	return tableBuffer.String()
}

func (s *SimpleUI) printf(format string, args ...any) {
	s.cmd.Printf(format, args...)
}
