package domain

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"depclip.dev/pkg/depclip/internal/adapter"
	m "depclip.dev/pkg/depclip/internal/model"
)

// Walker computes the dependency closure of one entry file. It owns the
// visited set for the lifetime of a single Walk call; the traversal is
// synchronous and uses an explicit worklist rather than recursion so deep
// import chains cannot exhaust the stack.
type Walker struct {
	fs      adapter.RepoFSAdapter
	ctx     *RepoContext
	visited map[m.Path]struct{}
	order   []m.Path
}

// NewWalker constructs a Walker bound to one repository context.
func NewWalker(fsAdapter adapter.RepoFSAdapter, ctx *RepoContext) *Walker {
	return &Walker{
		fs:      fsAdapter,
		ctx:     ctx,
		visited: make(map[m.Path]struct{}),
	}
}

// Walk visits entry and every local file transitively reachable from it via
// resolvable imports, returning the closure in first-visit order. Each path
// is inserted into the visited set before its imports are explored, which
// is the sole termination guarantee on cyclic import graphs. Ignored and
// out-of-repository paths are skipped together with their imports. A
// canonicalization or read failure on a file already committed to the
// closure aborts the whole run: a partial closure could silently omit
// dependencies.
func (w *Walker) Walk(entry m.Path) ([]m.Path, error) {
	stack := []m.Path{entry}

	for len(stack) > 0 {
		path := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		canonical, err := w.fs.Canonicalize(path)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
		}

		if _, seen := w.visited[canonical]; seen {
			continue
		}

		if w.ctx.IsIgnored(canonical) {
			slog.Debug("skipping ignored path", "path", canonical)
			continue
		}

		w.visited[canonical] = struct{}{}
		w.order = append(w.order, canonical)

		imports, err := w.fileImports(canonical)
		if err != nil {
			return nil, err
		}

		stack = append(stack, imports...)
	}

	slog.Debug("closure complete", "entry", entry, "files", len(w.order))

	return w.order, nil
}

// fileImports reads one visited file, extracts its raw imports and resolves
// them to candidate paths, keeping only candidates that exist on disk.
// Unresolved imports (external packages, garbage tokens from the lexical
// scan) are dropped silently; an unreadable file is a hard error.
func (w *Walker) fileImports(path m.Path) ([]m.Path, error) {
	content, err := w.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	syntax, ok := syntaxForPath(path)
	if !ok {
		return nil, nil
	}

	fileDir := m.Path(filepath.Dir(string(path)))

	var resolved []m.Path

	for _, raw := range syntax.Extract(string(content)) {
		for _, candidate := range syntax.Resolve(raw, fileDir, w.ctx) {
			if w.fs.Exists(candidate) {
				resolved = append(resolved, candidate)
			}
		}
	}

	return resolved, nil
}
