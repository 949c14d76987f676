package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "depclip.dev/pkg/depclip/internal/model"
)

func writeTestFile(t *testing.T, path string, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLocalRepoFSAdapter_Canonicalize(t *testing.T) {
	a := NewLocalRepoFSAdapter()

	t.Run("returns an absolute path", func(t *testing.T) {
		dir := t.TempDir()
		file := filepath.Join(dir, "a.py")
		writeTestFile(t, file, "")

		canonical, err := a.Canonicalize(m.Path(file))
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(string(canonical)))
	})

	t.Run("resolves symlinks", func(t *testing.T) {
		dir := t.TempDir()
		target := filepath.Join(dir, "target.py")
		writeTestFile(t, target, "")

		link := filepath.Join(dir, "link.py")
		require.NoError(t, os.Symlink(target, link))

		canonicalTarget, err := a.Canonicalize(m.Path(target))
		require.NoError(t, err)

		canonicalLink, err := a.Canonicalize(m.Path(link))
		require.NoError(t, err)

		assert.Equal(t, canonicalTarget, canonicalLink)
	})

	t.Run("fails on a vanished path", func(t *testing.T) {
		_, err := a.Canonicalize(m.Path(filepath.Join(t.TempDir(), "gone.py")))
		require.Error(t, err)
	})
}

func TestLocalRepoFSAdapter_FindRepoRoot(t *testing.T) {
	a := NewLocalRepoFSAdapter()

	t.Run("finds the marker from a nested file", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0o750))

		entry := filepath.Join(root, "src", "deep", "main.py")
		writeTestFile(t, entry, "")

		found, err := a.FindRepoRoot(m.Path(entry))
		require.NoError(t, err)

		canonicalRoot, err := a.Canonicalize(m.Path(root))
		require.NoError(t, err)
		assert.Equal(t, canonicalRoot, found)
	})

	t.Run("starting from a directory works too", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0o750))

		found, err := a.FindRepoRoot(m.Path(root))
		require.NoError(t, err)

		canonicalRoot, err := a.Canonicalize(m.Path(root))
		require.NoError(t, err)
		assert.Equal(t, canonicalRoot, found)
	})

	t.Run("a .git regular file is not a marker", func(t *testing.T) {
		dir := t.TempDir()
		writeTestFile(t, filepath.Join(dir, ".git"), "gitdir: elsewhere\n")
		writeTestFile(t, filepath.Join(dir, "main.py"), "")

		_, err := a.FindRepoRoot(m.Path(filepath.Join(dir, "main.py")))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotARepository)
	})

	t.Run("fails when no marker exists", func(t *testing.T) {
		dir := t.TempDir()
		writeTestFile(t, filepath.Join(dir, "main.py"), "")

		_, err := a.FindRepoRoot(m.Path(filepath.Join(dir, "main.py")))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotARepository)
	})
}

func TestLocalRepoFSAdapter_Queries(t *testing.T) {
	a := NewLocalRepoFSAdapter()
	dir := t.TempDir()
	file := filepath.Join(dir, "a.py")
	writeTestFile(t, file, "x = 1\n")

	t.Run("exists", func(t *testing.T) {
		assert.True(t, a.Exists(m.Path(file)))
		assert.True(t, a.Exists(m.Path(dir)))
		assert.False(t, a.Exists(m.Path(filepath.Join(dir, "gone.py"))))
	})

	t.Run("is dir", func(t *testing.T) {
		assert.True(t, a.IsDir(m.Path(dir)))
		assert.False(t, a.IsDir(m.Path(file)))
		assert.False(t, a.IsDir(m.Path(filepath.Join(dir, "gone"))))
	})

	t.Run("file size", func(t *testing.T) {
		size, err := a.FileSize(m.Path(file))
		require.NoError(t, err)
		assert.Equal(t, int64(6), size)

		_, err = a.FileSize(m.Path(filepath.Join(dir, "gone.py")))
		require.Error(t, err)
	})

	t.Run("read file", func(t *testing.T) {
		content, err := a.ReadFile(m.Path(file))
		require.NoError(t, err)
		assert.Equal(t, "x = 1\n", string(content))
	})

	t.Run("rel and join", func(t *testing.T) {
		rel, err := a.RelPath(m.Path(dir), m.Path(file))
		require.NoError(t, err)
		assert.Equal(t, m.Path("a.py"), rel)

		assert.Equal(t, m.Path(filepath.Join("a", "b", "c")), a.JoinPath("a", "b", "c"))
	})
}
