package domain

import (
	"path/filepath"
	"regexp"
	"strings"

	m "depclip.dev/pkg/depclip/internal/model"
)

// importSyntax pairs the two per-language operations: extracting raw import
// strings from source text and resolving one raw import to candidate paths.
// Candidates are not guaranteed to exist; the walker filters by existence
// once, centrally, so the behavior is consistent across languages.
type importSyntax interface {
	// Extract scans content and returns every raw import target it
	// recognizes. It never fails on malformed input: at worst it misses an
	// import or produces a token that fails the existence check later.
	Extract(content string) []m.RawImport

	// Resolve turns one raw import plus the importing file's directory into
	// zero or more candidate paths.
	Resolve(raw m.RawImport, fileDir m.Path, ctx *RepoContext) []m.Path
}

// syntaxForPath selects the language variant by file extension. Files with
// no recognized import syntax get (nil, false) and contribute nothing to
// the closure beyond themselves.
func syntaxForPath(path m.Path) (importSyntax, bool) {
	switch m.LanguageForPath(path) {
	case m.LangPython:
		return pythonSyntax{}, true
	case m.LangJS:
		return jsSyntax{}, true
	}

	return nil, false
}

const pythonExt = ".py"

// pythonImportRe matches the two statement forms at line start:
// `from <module> import ...` and `import <module>`, where <module> is a
// dotted identifier sequence. Only the `from` form admits the one- or
// two-dot relative-import prefix.
var pythonImportRe = regexp.MustCompile(
	`^(?:from\s+(\.{0,2}[^.\s]+(?:\.[^.\s]+)*)\s+import|import\s+([^.\s]+(?:\.[^.\s]+)*))`,
)

// pythonSyntax scans Python sources line by line. Multi-line imports,
// `as` aliasing and wildcard semantics are out of scope; the module token
// is captured verbatim, leading dots included.
type pythonSyntax struct{}

// Extract returns the module token of every import statement in content.
func (pythonSyntax) Extract(content string) []m.RawImport {
	var imports []m.RawImport

	for _, line := range strings.Split(content, "\n") {
		caps := pythonImportRe.FindStringSubmatch(strings.TrimSpace(line))
		if caps == nil {
			continue
		}

		module := caps[1]
		if module == "" {
			module = caps[2]
		}

		imports = append(imports, m.RawImport(module))
	}

	return imports
}

// Resolve produces exactly one candidate per import: the module token with
// dots converted to path separators, joined onto the importing file's
// directory for relative imports and onto the repository root otherwise,
// with the Python source extension appended. There is no implicit
// package/__init__ inference.
func (pythonSyntax) Resolve(raw m.RawImport, fileDir m.Path, ctx *RepoContext) []m.Path {
	module := strings.ReplaceAll(string(raw), ".", string(filepath.Separator))

	base := string(ctx.Root)
	if strings.HasPrefix(string(raw), ".") {
		base = string(fileDir)
	}

	return []m.Path{m.Path(string(ctx.fs.JoinPath(base, module)) + pythonExt)}
}

// jsExtensions lists the source extensions probed during JS/TS resolution,
// both for extension inference and for directory index candidates.
var jsExtensions = []string{".js", ".jsx", ".ts", ".tsx"}

// jsImportRe matches `import ... from '<target>'` and `require('<target>')`
// on a single line, accepting single, double or backtick quotes. This is a
// best-effort lexical scan, not a parse: dynamic imports spanning lines and
// template-literal interpolation are not handled, which is acceptable since
// only import targets are needed, not semantic correctness.
var jsImportRe = regexp.MustCompile("(?:import.*from\\s+[`'\"]|require\\(\\s*[`'\"])([^`'\"]+)[`'\"]")

// jsSyntax covers the JS/TS family (.js, .jsx, .ts, .tsx).
type jsSyntax struct{}

// Extract returns the quoted import target of every matching line.
func (jsSyntax) Extract(content string) []m.RawImport {
	var imports []m.RawImport

	for _, line := range strings.Split(content, "\n") {
		caps := jsImportRe.FindStringSubmatch(strings.TrimSpace(line))
		if caps == nil {
			continue
		}

		imports = append(imports, m.RawImport(caps[1]))
	}

	return imports
}

// Resolve derives the base path via the alias/relative rule, falling back
// to a verbatim join onto the importing file's directory, then fans out one
// candidate per supported extension. When the base path is itself an
// existing directory, an index candidate per extension is added. Bare
// package names (react, lodash, ...) still produce candidates; they are
// expected to fail the existence check, which is the mechanism that keeps
// external packages out of the closure.
func (jsSyntax) Resolve(raw m.RawImport, fileDir m.Path, ctx *RepoContext) []m.Path {
	base, ok := ctx.ResolveAlias(raw, fileDir)
	if !ok {
		base = ctx.fs.JoinPath(string(fileDir), string(raw))
	}

	stem := strings.TrimSuffix(string(base), filepath.Ext(string(base)))

	candidates := make([]m.Path, 0, len(jsExtensions)*2)
	for _, ext := range jsExtensions {
		candidates = append(candidates, m.Path(stem+ext))
	}

	if ctx.fs.IsDir(base) {
		for _, ext := range jsExtensions {
			candidates = append(candidates, ctx.fs.JoinPath(string(base), "index"+ext))
		}
	}

	return candidates
}
