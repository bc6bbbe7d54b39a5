package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/glorpus-work/elm-sideload/pkg/fsutil"
	"github.com/glorpus-work/elm-sideload/pkg/registry"
	"github.com/spf13/cobra"
)

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a starter sideload configuration",
		Long: `Create an empty elm-sideload.json next to the project's elm.json and
add the local clone cache to .gitignore.`,
		Args: cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return runInit()
		},
	}
	return cmd
}

func runInit() error {
	path, err := registryPath()
	if err != nil {
		return err
	}
	if fsutil.Exists(path) {
		return fmt.Errorf("%s already exists, refusing to overwrite", path)
	}
	if err := registry.Default().Persist(path); err != nil {
		return err
	}
	if err := appendIgnoreEntry(filepath.Join(filepath.Dir(path), GitIgnoreFileName)); err != nil {
		return err
	}
	fmt.Printf("Created %s\n", path)
	return nil
}

// appendIgnoreEntry adds the cache entry to the ignore file, creating the
// file when the project has none yet.
func appendIgnoreEntry(ignorePath string) error {
	data, err := os.ReadFile(ignorePath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to read %s: %w", ignorePath, err)
	}
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == LocalCacheIgnoreEntry {
			return nil
		}
	}

	content := string(data)
	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	content += LocalCacheIgnoreEntry + "\n"
	return os.WriteFile(ignorePath, []byte(content), fsutil.FileModeDefault)
}
