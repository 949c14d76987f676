// Package domain implements the import-resolution and dependency-closure
// engine: repository context, per-language import syntax, and the traversal
// that builds the file set.
package domain

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"

	"depclip.dev/pkg/depclip/internal/adapter"
	m "depclip.dev/pkg/depclip/internal/model"
)

const (
	gitignoreFileName = ".gitignore"

	// rootAlias is always present in the alias table and maps to the
	// repository root.
	rootAlias = "@"
)

// RepoContext carries the repository root, the ignore predicate and the
// alias table for one traversal run. It is created once per run from the
// entry file's location and read-only thereafter.
type RepoContext struct {
	Root m.Path

	fs      adapter.RepoFSAdapter
	matcher *ignore.GitIgnore
	aliases map[string]m.Path
}

// ContextOption customizes RepoContext construction.
type ContextOption func(*contextConfig)

type contextConfig struct {
	extraIgnores []string
	aliases      map[string]string
}

// WithExtraIgnores appends gitignore-style patterns to the rules loaded
// from the repository's ignore file.
func WithExtraIgnores(patterns []string) ContextOption {
	return func(c *contextConfig) {
		c.extraIgnores = append(c.extraIgnores, patterns...)
	}
}

// WithAliases adds alias tokens to the table. Directories are taken
// relative to the repository root unless absolute.
func WithAliases(aliases map[string]string) ContextOption {
	return func(c *contextConfig) {
		if c.aliases == nil {
			c.aliases = make(map[string]string, len(aliases))
		}
		for token, dir := range aliases {
			c.aliases[token] = dir
		}
	}
}

// NewRepoContext locates the repository enclosing entry, loads its ignore
// rules and builds the alias table.
func NewRepoContext(fsAdapter adapter.RepoFSAdapter, entry m.Path, options ...ContextOption) (*RepoContext, error) {
	var cfg contextConfig
	for _, option := range options {
		option(&cfg)
	}

	root, err := fsAdapter.FindRepoRoot(entry)
	if err != nil {
		return nil, err
	}

	matcher, err := loadIgnoreRules(fsAdapter, root, cfg.extraIgnores)
	if err != nil {
		return nil, err
	}

	aliases := map[string]m.Path{rootAlias: root}
	for token, dir := range cfg.aliases {
		if filepath.IsAbs(dir) {
			aliases[token] = m.Path(dir)
		} else {
			aliases[token] = fsAdapter.JoinPath(string(root), dir)
		}
	}

	slog.Debug("repository context ready", "root", root, "aliases", len(aliases))

	return &RepoContext{
		Root:    root,
		fs:      fsAdapter,
		matcher: matcher,
		aliases: aliases,
	}, nil
}

// loadIgnoreRules compiles the ignore file at root together with any extra
// patterns. An absent ignore file is not an error and yields a predicate
// built from the extra patterns alone.
func loadIgnoreRules(fsAdapter adapter.RepoFSAdapter, root m.Path, extra []string) (*ignore.GitIgnore, error) {
	var lines []string

	content, err := fsAdapter.ReadFile(fsAdapter.JoinPath(string(root), gitignoreFileName))
	switch {
	case err == nil:
		lines = strings.Split(string(content), "\n")
	case errors.Is(err, fs.ErrNotExist):
		// No ignore file; only the extra patterns apply.
	default:
		return nil, fmt.Errorf("failed to load ignore rules at %s: %w", root, err)
	}

	lines = append(lines, extra...)

	return ignore.CompileIgnoreLines(lines...), nil
}

// IsIgnored reports whether path is excluded from the closure: either it
// does not lie under the repository root after canonicalization, or it
// matches an ignore rule (rules apply to the path and to any ancestor
// directory, per standard gitignore semantics).
func (c *RepoContext) IsIgnored(path m.Path) bool {
	canonical, err := c.fs.Canonicalize(path)
	if err != nil {
		return true
	}

	rel, err := c.fs.RelPath(c.Root, canonical)
	if err != nil || strings.HasPrefix(string(rel), "..") {
		slog.Debug("path escapes repository", "path", path)
		return true
	}

	relPath := filepath.ToSlash(string(rel))
	if c.fs.IsDir(canonical) {
		// Trailing slash lets directory-only patterns match.
		relPath += "/"
	}

	return c.matcher.MatchesPath(relPath)
}

// ResolveAlias maps an alias-qualified or relative raw import onto a base
// path. The first path segment is looked up in the alias table (single
// segment only, no longest-prefix matching); failing that, imports starting
// with a relative marker are joined onto the importing file's directory.
// Returns false when neither rule applies so the caller can fall back to
// language-specific resolution.
func (c *RepoContext) ResolveAlias(raw m.RawImport, fileDir m.Path) (m.Path, bool) {
	if token, rest, found := strings.Cut(string(raw), "/"); found {
		if aliasRoot, known := c.aliases[token]; known {
			return c.fs.JoinPath(string(aliasRoot), rest), true
		}
	}

	if strings.HasPrefix(string(raw), ".") {
		return c.fs.JoinPath(string(fileDir), string(raw)), true
	}

	return "", false
}
