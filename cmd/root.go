// Package cmd provides the root command and CLI setup for depclip.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"depclip.dev/pkg/depclip/internal/adapter"
	"depclip.dev/pkg/depclip/internal/controller"
	"depclip.dev/pkg/depclip/internal/domain"
	m "depclip.dev/pkg/depclip/internal/model"
)

var fsAdapter adapter.RepoFSAdapter
var clipboardAdapter adapter.ClipboardAdapter
var ui controller.UI

// excludePatterns is a root-level flag that adds ignore rules on top of the
// repository's ignore file.
var excludePatterns []string

// verboseFlag raises the log level to Debug when set.
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewSimpleUI(rootCmd)
	fsAdapter = adapter.NewLocalRepoFSAdapter()
	clipboardAdapter = adapter.NewSystemClipboardAdapter()
}

const rootLongDescription = `Depclip discovers the local files a source file depends on by statically
scanning its import statements and following them recursively, then copies
the whole set to the system clipboard in one paste-ready bundle.

Python and the JS/TS family (.js, .jsx, .ts, .tsx) are supported. Imports
that do not resolve to a file inside the enclosing git repository (external
packages, generated modules) are left out, as is anything the repository's
.gitignore excludes.`

const copyLongDescription = `Resolve the dependency closure of the given file and copy the concatenated
contents, each file demarcated by its path, to the system clipboard.`

const listLongDescription = `Resolve the dependency closure of the given file and print the listing
without touching the clipboard.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "depclip",
		Short: "Copy a file and its local dependencies to the clipboard",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude files matching gitignore-style pattern (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "enable debug logging")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// resolveClosure builds the repository context from the entry file and runs
// the traversal. The entry file itself must exist; everything else that
// fails to resolve is dropped by the walker.
func resolveClosure(entry m.Path) ([]m.Path, error) {
	if !fsAdapter.Exists(entry) {
		return nil, fmt.Errorf("file not found: %s", entry)
	}

	repoCtx, err := domain.NewRepoContext(fsAdapter, entry,
		domain.WithExtraIgnores(viper.GetStringSlice(excludeConfigKey)),
		domain.WithAliases(viper.GetStringMapString(aliasesConfigKey)),
	)
	if err != nil {
		return nil, err
	}

	return domain.NewWalker(fsAdapter, repoCtx).Walk(entry)
}

// workingDir returns the process working directory as the display base, or
// the empty path when it cannot be determined (display then falls back to
// resolved paths).
func workingDir() m.Path {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	return m.Path(cwd)
}

// describeFiles attaches display paths and sizes for the closure listing.
func describeFiles(paths []m.Path, base m.Path) []m.File {
	files := make([]m.File, 0, len(paths))
	for _, path := range paths {
		size, err := fsAdapter.FileSize(path)
		if err != nil {
			size = 0
		}

		files = append(files, m.File{
			Path:      path,
			ShortPath: domain.DisplayPath(fsAdapter, path, base),
			Size:      size,
		})
	}

	return files
}
