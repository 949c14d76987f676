// Package model defines the shared value types used across depclip.
package model

import (
	"path/filepath"
	"strings"
)

// Path represents a file system path.
type Path string

// RawImport is an import target exactly as written in source text, before
// any resolution (relative, alias-qualified, or module-qualified).
type RawImport string

// Language tags the import syntax of a source file.
type Language string

// Available Language values.
const (
	// LangPython covers .py files.
	LangPython Language = "python"

	// LangJS covers the JS/TS family: .js, .jsx, .ts, .tsx.
	LangJS Language = "javascript"

	// LangNone marks files with no recognized import syntax.
	LangNone Language = ""
)

// LanguageForPath maps a file extension to its Language tag. Unknown
// extensions yield LangNone rather than an error; most files simply have
// no import syntax worth scanning.
func LanguageForPath(p Path) Language {
	switch strings.ToLower(filepath.Ext(string(p))) {
	case ".py":
		return LangPython
	case ".js", ".jsx", ".ts", ".tsx":
		return LangJS
	}

	return LangNone
}

// File describes one resolved member of the closure for display purposes.
type File struct {
	Path      Path
	ShortPath Path
	Size      int64
}
