package adapter

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// ClipboardAdapter is the sink that receives the bundled closure contents.
// Implementations can target the system clipboard or a test recorder.
type ClipboardAdapter interface {
	// Write replaces the sink contents with the provided text.
	Write(content string) error
}

// SystemClipboardAdapter writes to the OS clipboard.
type SystemClipboardAdapter struct{}

// NewSystemClipboardAdapter constructs a SystemClipboardAdapter.
func NewSystemClipboardAdapter() *SystemClipboardAdapter {
	return &SystemClipboardAdapter{}
}

// Write copies content to the system clipboard.
func (a *SystemClipboardAdapter) Write(content string) error {
	if err := clipboard.WriteAll(content); err != nil {
		return fmt.Errorf("failed to write to clipboard: %w", err)
	}

	return nil
}
