package hook

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/glorpus-work/elm-sideload/pkg/errors"
)

// scriptExtension is the only supported hook script extension.
const scriptExtension = ".tengo"

// LoadFromDir loads hook scripts from a directory. Files are matched by
// name: <hook-type>.tengo. A missing directory is a no-op, unknown names and
// other extensions are skipped.
func LoadFromDir(manager Manager, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "failed to read hooks directory %s", dir)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != scriptExtension {
			continue
		}

		hookType := Type(strings.TrimSuffix(entry.Name(), scriptExtension))
		switch hookType {
		case PreInstall, PostInstall, PreUnload, PostUnload:
		default:
			continue
		}

		path := filepath.Join(dir, entry.Name())
		content, err := os.ReadFile(path)
		if err != nil {
			return errors.Wrapf(errors.ErrHookLoad, "error reading hook file %s: %v", path, err)
		}

		if err := manager.AddHook(Hook{Type: hookType, Content: string(content)}); err != nil {
			return err
		}
	}
	return nil
}
