package domain

import (
	"fmt"
	"strings"

	"depclip.dev/pkg/depclip/internal/adapter"
	m "depclip.dev/pkg/depclip/internal/model"
)

// BuildPayload concatenates the contents of every file in the closure,
// each demarcated by its display path, ready for the clipboard sink.
func BuildPayload(fsAdapter adapter.RepoFSAdapter, files []m.Path, base m.Path) (string, error) {
	var payload strings.Builder

	for _, path := range files {
		payload.WriteString(fmt.Sprintf("\n<file>%s</file>\n", DisplayPath(fsAdapter, path, base)))

		content, err := fsAdapter.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", path, err)
		}

		payload.Write(content)
		payload.WriteString("\n")
	}

	return payload.String(), nil
}

// DisplayPath renders path relative to base when it lies under base,
// otherwise the path as resolved. The base directory is passed in
// explicitly rather than read from ambient process state.
func DisplayPath(fsAdapter adapter.RepoFSAdapter, path, base m.Path) m.Path {
	if base == "" {
		return path
	}

	rel, err := fsAdapter.RelPath(base, path)
	if err != nil || strings.HasPrefix(string(rel), "..") {
		return path
	}

	return rel
}
