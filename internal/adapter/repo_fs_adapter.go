// Package adapter contains infrastructure adapters for the depclip CLI.
package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	m "depclip.dev/pkg/depclip/internal/model"
)

// ErrNotARepository reports that no enclosing git repository was found
// walking up from the start path.
var ErrNotARepository = errors.New("not inside a git repository")

// gitDirName is the repository marker directory searched for when locating
// the repository root.
const gitDirName = ".git"

// RepoFSAdapter abstracts filesystem-specific operations that the domain
// layer relies on when resolving imports. It intentionally hides direct `os`
// access so the traversal logic can be tested without touching the disk.
type RepoFSAdapter interface {
	// Canonicalize resolves path to an absolute, symlink-free form.
	Canonicalize(path m.Path) (m.Path, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// Exists reports whether path refers to anything on disk.
	Exists(path m.Path) bool

	// IsDir reports whether path refers to an existing directory.
	IsDir(path m.Path) bool

	// FileSize returns the size in bytes of the file at path.
	FileSize(path m.Path) (int64, error)

	// FindRepoRoot searches for the repository marker directory walking up
	// the directory tree from startPath.
	FindRepoRoot(startPath m.Path) (m.Path, error)

	// RelPath returns the relative path from base to target.
	RelPath(base, target m.Path) (m.Path, error)

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// LocalRepoFSAdapter is the concrete implementation backed by the os and
// path/filepath packages.
type LocalRepoFSAdapter struct{}

// NewLocalRepoFSAdapter constructs a LocalRepoFSAdapter ready to be wired
// into the traversal.
func NewLocalRepoFSAdapter() *LocalRepoFSAdapter {
	return &LocalRepoFSAdapter{}
}

// Canonicalize resolves path to an absolute path with symlinks evaluated.
func (a *LocalRepoFSAdapter) Canonicalize(path m.Path) (m.Path, error) {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		return "", err
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", err
	}

	return m.Path(resolved), nil
}

// ReadFile loads file contents from disk.
func (a *LocalRepoFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// Exists reports whether path exists on disk (file or directory).
func (a *LocalRepoFSAdapter) Exists(path m.Path) bool {
	_, err := os.Stat(string(path))
	return err == nil
}

// IsDir reports whether path is an existing directory.
func (a *LocalRepoFSAdapter) IsDir(path m.Path) bool {
	info, err := os.Stat(string(path))
	return err == nil && info.IsDir()
}

// FileSize returns the size in bytes of the file at path.
func (a *LocalRepoFSAdapter) FileSize(path m.Path) (int64, error) {
	info, err := os.Stat(string(path))
	if err != nil {
		return 0, err
	}

	return info.Size(), nil
}

// FindRepoRoot walks up from startPath until a directory containing the
// repository marker is found. Reaching the filesystem root without finding
// one yields ErrNotARepository.
func (a *LocalRepoFSAdapter) FindRepoRoot(startPath m.Path) (m.Path, error) {
	canonical, err := a.Canonicalize(startPath)
	if err != nil {
		return "", err
	}

	dir := string(canonical)
	if !a.IsDir(canonical) {
		dir = filepath.Dir(dir)
	}

	for {
		if a.IsDir(m.Path(filepath.Join(dir, gitDirName))) {
			return m.Path(dir), nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w (searched upward from %s)", ErrNotARepository, startPath)
		}

		dir = parent
	}
}

// RelPath returns the relative path from base to target.
func (a *LocalRepoFSAdapter) RelPath(base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(rel), nil
}

// JoinPath joins path elements into a single path.
func (a *LocalRepoFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
