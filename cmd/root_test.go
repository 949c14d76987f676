package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"depclip.dev/pkg/depclip/internal/adapter"
	m "depclip.dev/pkg/depclip/internal/model"
)

func writeFixture(t *testing.T, path string, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

// newFixtureRepo creates a temp git repository with a two-file JS project
// and returns the root and the entry file.
func newFixtureRepo(t *testing.T) (string, string) {
	t.Helper()

	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0o750))

	entry := filepath.Join(root, "main.js")
	writeFixture(t, entry, "import u from './util'\n")
	writeFixture(t, filepath.Join(root, "util.js"), "export default 1\n")

	return root, entry
}

func TestBaseRootCmd(t *testing.T) {
	cmd := baseRootCmd()
	assert.Equal(t, "depclip", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, rootLongDescription, cmd.Long)
}

func TestRootCmd_HelpOutput(t *testing.T) {
	output := &bytes.Buffer{}
	rootCmd.SetOut(output)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"--help"})

	err := rootCmd.Execute()
	require.NoError(t, err)

	for _, subcommand := range []string{"copy", "list", "init", "version"} {
		assert.Contains(t, output.String(), subcommand)
	}
}

func TestResolveClosure(t *testing.T) {
	t.Run("resolves the transitive closure", func(t *testing.T) {
		root, entry := newFixtureRepo(t)

		files, err := resolveClosure(m.Path(entry))
		require.NoError(t, err)

		canonicalRoot, err := fsAdapter.Canonicalize(m.Path(root))
		require.NoError(t, err)

		assert.ElementsMatch(t, []m.Path{
			m.Path(filepath.Join(string(canonicalRoot), "main.js")),
			m.Path(filepath.Join(string(canonicalRoot), "util.js")),
		}, files)
	})

	t.Run("missing entry file errors", func(t *testing.T) {
		_, err := resolveClosure(m.Path(filepath.Join(t.TempDir(), "gone.js")))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "file not found")
	})

	t.Run("entry outside a repository errors", func(t *testing.T) {
		dir := t.TempDir()
		entry := filepath.Join(dir, "main.js")
		writeFixture(t, entry, "")

		_, err := resolveClosure(m.Path(entry))
		require.Error(t, err)
		assert.ErrorIs(t, err, adapter.ErrNotARepository)
	})
}

func TestDescribeFiles(t *testing.T) {
	root, entry := newFixtureRepo(t)

	files := describeFiles([]m.Path{m.Path(entry)}, m.Path(root))
	require.Len(t, files, 1)

	assert.Equal(t, m.Path(entry), files[0].Path)
	assert.Equal(t, m.Path("main.js"), files[0].ShortPath)
	assert.Equal(t, int64(len("import u from './util'\n")), files[0].Size)
}
