// Package registry persists the mapping from original package identity to
// override source. The configuration file is owned by the user's project
// directory and is always read and written wholesale; no partial update is
// ever visible externally.
package registry

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/glorpus-work/elm-sideload/pkg/errors"
	"github.com/glorpus-work/elm-sideload/pkg/fsutil"
	"github.com/glorpus-work/elm-sideload/pkg/model"
)

// DefaultFileName is the sideload configuration file written next to elm.json.
const DefaultFileName = "elm-sideload.json"

// Config is the persisted override registry.
type Config struct {
	ElmJSONPath    string               `json:"elmJsonPath"`
	RequireElmHome bool                 `json:"requireElmHome"`
	Sideloads      []model.Registration `json:"sideloads"`
}

// Default returns a starter configuration pointing at an elm.json sibling.
func Default() *Config {
	return &Config{
		ElmJSONPath:    "elm.json",
		RequireElmHome: false,
		Sideloads:      []model.Registration{},
	}
}

// Load reads the configuration at path. A missing file is reported as
// ErrNoSideloadConfigFound, malformed content as ErrInvalidSideloadConfig.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.ErrEmptyConfigPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(errors.ErrNoSideloadConfigFound, "%s", path)
		}
		return nil, errors.Wrapf(err, "failed to read sideload config %s", path)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(errors.ErrInvalidSideloadConfig, err.Error())
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the structural invariants of every registration.
func (c *Config) Validate() error {
	if c.ElmJSONPath == "" {
		return errors.Wrap(errors.ErrInvalidSideloadConfig, "elmJsonPath cannot be empty")
	}
	seen := make(map[string]bool, len(c.Sideloads))
	for _, reg := range c.Sideloads {
		if _, _, err := model.SplitPackageName(reg.OriginalPackageName); err != nil {
			return err
		}
		if seen[reg.OriginalPackageName] {
			return errors.Wrapf(errors.ErrInvalidSideloadConfig, "duplicate registration for %s", reg.OriginalPackageName)
		}
		seen[reg.OriginalPackageName] = true
		if reg.GetVersion() == nil {
			return errors.Wrapf(errors.ErrInvalidSideloadConfig, "invalid version %q for %s", reg.OriginalPackageVersion, reg.OriginalPackageName)
		}
		if err := reg.SideloadedPackage.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Upsert returns a copy of the configuration with reg registered. Any
// existing registration with the same original package name is removed
// before the new one is appended, which is what makes configure idempotent:
// running it twice for the same package replaces, never duplicates.
func (c *Config) Upsert(reg model.Registration) *Config {
	out := &Config{
		ElmJSONPath:    c.ElmJSONPath,
		RequireElmHome: c.RequireElmHome,
		Sideloads:      make([]model.Registration, 0, len(c.Sideloads)+1),
	}
	for _, existing := range c.Sideloads {
		if existing.OriginalPackageName != reg.OriginalPackageName {
			out.Sideloads = append(out.Sideloads, existing)
		}
	}
	out.Sideloads = append(out.Sideloads, reg)
	return out
}

// Persist writes the configuration to path atomically: the content goes to a
// temporary sibling first and is renamed into place, so a failed write never
// leaves a half-written config behind.
func (c *Config) Persist(path string) error {
	if path == "" {
		return errors.ErrEmptyConfigPath
	}
	if err := c.Validate(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "    ")
	if err != nil {
		return errors.Wrap(errors.ErrConfigEncode, err.Error())
	}
	data = append(data, '\n')

	if err := fsutil.EnsureFileDir(path); err != nil {
		return errors.Wrap(errors.ErrConfigDirectory, err.Error())
	}

	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, data, fsutil.FileModeDefault); err != nil {
		return errors.Wrap(errors.ErrConfigFileCreate, err.Error())
	}
	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return errors.Wrap(errors.ErrConfigFileRename, err.Error())
	}
	return nil
}

// ManifestPath resolves the configured elm.json path relative to the
// directory holding the sideload config.
func (c *Config) ManifestPath(configDir string) string {
	if filepath.IsAbs(c.ElmJSONPath) {
		return c.ElmJSONPath
	}
	return filepath.Join(configDir, c.ElmJSONPath)
}
