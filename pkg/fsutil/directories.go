// Package fsutil provides utility functions and constants for file system operations.
package fsutil

import (
	"os"
	"path/filepath"
)

// AppName is the name of the application used in paths.
const AppName = "elm-sideload"

// EnsureDir creates a directory and all necessary parent directories with default
// permissions if they don't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(path, DirModeDefault)
}

// EnsureFileDir creates the parent directory of a file path if it doesn't exist.
func EnsureFileDir(filePath string) error {
	return EnsureDir(filepath.Dir(filePath))
}

// GetCacheDir returns the platform-specific cache directory for the application.
// On Linux: ~/.cache/elm-sideload/
// On macOS: ~/Library/Caches/elm-sideload/
// On Windows: %LOCALAPPDATA%\elm-sideload\
func GetCacheDir() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cacheDir, AppName), nil
}

// GetRepoCacheDir returns the directory for cached clones of override sources.
// Format: <cache_dir>/repos/
func GetRepoCacheDir() (string, error) {
	cacheDir, err := GetCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cacheDir, "repos"), nil
}
