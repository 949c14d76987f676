// Package controller provides output adapters for displaying closure results.
package controller

import (
	m "depclip.dev/pkg/depclip/internal/model"
)

// UI defines the interface for presenting the resolved closure.
// Implementations can use different output methods (simple text, etc).
type UI interface {
	// DisplayClosure renders the listing of every file in the closure.
	DisplayClosure(files []m.File)

	// DisplayCopied confirms how many files were handed to the sink.
	DisplayCopied(fileCount int)
}
