// Package config manages the tool's own settings: cache location, target
// compiler version, log level and hook scripts. These are distinct from the
// per-project sideload configuration, which lives next to elm.json and is
// owned by pkg/registry.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/glorpus-work/elm-sideload/pkg/errors"
	"github.com/glorpus-work/elm-sideload/pkg/fsutil"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Settings Settings `yaml:"settings"`
}

// Settings represents general application settings.
type Settings struct {
	// CacheDir is the root for cached clones of override sources.
	CacheDir string `yaml:"cache_dir,omitempty"`

	// CompilerVersion selects the host compiler's package directory layout
	// (<ELM_HOME>/<version>/packages) and its per-project build cache
	// (elm-stuff/<version>).
	CompilerVersion string `yaml:"compiler_version"`

	// HooksDir optionally points at a directory of .tengo hook scripts.
	HooksDir string `yaml:"hooks_dir,omitempty"`

	// Output settings.
	LogLevel string `yaml:"log_level"` // error, warn, info, debug
}

// DefaultCompilerVersion is the compiler convention the slot paths follow.
const DefaultCompilerVersion = "0.19.1"

// YAMLIndent is the number of spaces to use for YAML indentation.
const YAMLIndent = 2

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	cacheDir, err := fsutil.GetRepoCacheDir()
	if err != nil {
		// Fallback to a working-directory cache if the user cache dir is
		// undeterminable.
		cacheDir = filepath.Join(".", ".elm-sideload-cache")
	}
	return &Config{
		Settings: Settings{
			CacheDir:        cacheDir,
			CompilerVersion: DefaultCompilerVersion,
			LogLevel:        "info",
		},
	}
}

// LoadConfig loads configuration from a file. A missing file yields the
// defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, errors.ErrEmptyConfigPath
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, errors.Wrapf(err, "failed to open config file: %s", path)
	}
	defer func() { _ = file.Close() }()

	return LoadConfigFromReader(file)
}

// LoadConfigFromReader loads configuration from an io.Reader.
func LoadConfigFromReader(reader io.Reader) (*Config, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config data")
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, errors.Wrap(errors.ErrConfigParse, err.Error())
	}

	config.applyDefaults()
	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrConfigValidation, err.Error())
	}
	return &config, nil
}

// SaveConfig saves configuration to a file, atomically replacing any
// existing content.
func (c *Config) SaveConfig(path string) error {
	if path == "" {
		return errors.ErrEmptyConfigPath
	}

	if err := os.MkdirAll(filepath.Dir(path), fsutil.DirModeDefault); err != nil {
		return errors.Wrap(errors.ErrConfigDirectory, err.Error())
	}

	tempPath := path + ".tmp"
	file, err := os.OpenFile(tempPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fsutil.FileModeDefault)
	if err != nil {
		return errors.Wrap(errors.ErrConfigFileCreate, err.Error())
	}

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(YAMLIndent)
	if err := encoder.Encode(c); err != nil {
		_ = file.Close()
		_ = os.Remove(tempPath)
		return errors.Wrap(errors.ErrConfigEncode, err.Error())
	}
	_ = encoder.Close()
	_ = file.Close()

	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return errors.Wrap(errors.ErrConfigFileRename, err.Error())
	}
	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c == nil {
		return errors.ErrConfigValidation
	}
	if c.Settings.CompilerVersion == "" {
		return fmt.Errorf("compiler_version cannot be empty")
	}
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Settings.LogLevel)] {
		return fmt.Errorf("invalid log level %q", c.Settings.LogLevel)
	}
	return nil
}

// applyDefaults fills in missing values with defaults.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Settings.CacheDir == "" {
		c.Settings.CacheDir = defaults.Settings.CacheDir
	}
	if c.Settings.CompilerVersion == "" {
		c.Settings.CompilerVersion = defaults.Settings.CompilerVersion
	}
	if c.Settings.LogLevel == "" {
		c.Settings.LogLevel = defaults.Settings.LogLevel
	}
}

// GetDefaultConfigPath returns the default configuration file path.
func GetDefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, fsutil.AppName, "config.yaml"), nil
}
