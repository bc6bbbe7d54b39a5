package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/glorpus-work/elm-sideload/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "info", cfg.Settings.LogLevel)
	assert.Equal(t, DefaultCompilerVersion, cfg.Settings.CompilerVersion)
	assert.NotEmpty(t, cfg.Settings.CacheDir)
}

func TestLoadConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	configContent := `settings:
  cache_dir: /tmp/sideload-cache
  compiler_version: 0.19.0
  log_level: debug
  hooks_dir: ./hooks`

	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o644))

	cfg, err := LoadConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/sideload-cache", cfg.Settings.CacheDir)
	assert.Equal(t, "0.19.0", cfg.Settings.CompilerVersion)
	assert.Equal(t, "debug", cfg.Settings.LogLevel)
	assert.Equal(t, "./hooks", cfg.Settings.HooksDir)
}

func TestLoadConfigMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigAppliesDefaults(t *testing.T) {
	cfg, err := LoadConfigFromReader(strings.NewReader("settings:\n  log_level: warn\n"))
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Settings.LogLevel)
	assert.Equal(t, DefaultCompilerVersion, cfg.Settings.CompilerVersion)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	_, err := LoadConfigFromReader(strings.NewReader("settings: ["))
	assert.ErrorIs(t, err, errors.ErrConfigParse)
}

func TestLoadConfigInvalidLogLevel(t *testing.T) {
	_, err := LoadConfigFromReader(strings.NewReader("settings:\n  log_level: loud\n"))
	assert.ErrorIs(t, err, errors.ErrConfigValidation)
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Settings.LogLevel = "debug"
	require.NoError(t, cfg.SaveConfig(path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
