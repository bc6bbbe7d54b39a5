// Package installer owns the mechanics of a single installed package slot:
// resolving the package-cache root from the environment, replacing slot
// contents wholesale, and busting the compiled-artifact caches the host
// compiler would otherwise trust.
package installer

import (
	"path/filepath"

	"github.com/glorpus-work/elm-sideload/pkg/errors"
	"github.com/glorpus-work/elm-sideload/pkg/model"
)

const (
	elmHomeEnvVar = "ELM_HOME"
	appDataEnvVar = "APPDATA"
)

// PackagesRoot resolves the host package manager's package directory:
// an explicit override path wins, then the ELM_HOME variable, then a
// platform default. When requireElmHome is set, a missing variable is a
// hard failure instead of a fallback.
func PackagesRoot(env model.Environment, overridePath string, requireElmHome bool, compilerVersion string) (string, error) {
	elmHome := overridePath
	if elmHome == "" {
		elmHome = env.Getenv(elmHomeEnvVar)
	}
	if elmHome == "" {
		if requireElmHome {
			return "", errors.ErrNoHomeDirectory
		}
		elmHome = defaultElmHome(env)
		if elmHome == "" {
			return "", errors.Wrap(errors.ErrNoHomeDirectory, "no home directory to derive a default from")
		}
	}
	return filepath.Join(elmHome, compilerVersion, "packages"), nil
}

// defaultElmHome mirrors the host compiler's own convention:
// %APPDATA%/elm on Windows, ~/.elm elsewhere.
func defaultElmHome(env model.Environment) string {
	if env.GOOS == "windows" {
		if appData := env.Getenv(appDataEnvVar); appData != "" {
			return filepath.Join(appData, "elm")
		}
		return ""
	}
	if env.HomeDir == "" {
		return ""
	}
	return filepath.Join(env.HomeDir, ".elm")
}
