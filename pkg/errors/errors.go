// Package errors defines the shared error values used across elm-sideload.
package errors

import "fmt"

// Common error types.
var (
	// Precondition errors.
	ErrNoManifestFound           = fmt.Errorf("elm.json not found")
	ErrNoSideloadConfigFound     = fmt.Errorf("sideload configuration not found")
	ErrInvalidSideloadConfig     = fmt.Errorf("invalid sideload configuration")
	ErrPackageNotFoundInManifest = fmt.Errorf("package not found in elm.json dependencies")
	ErrNoHomeDirectory           = fmt.Errorf("ELM_HOME is not set")

	// Source resolution errors.
	ErrInvalidRemoteReference = fmt.Errorf("invalid remote reference")

	// Apply errors.
	ErrInvalidPackageName = fmt.Errorf("invalid package name, expected author/name")
	ErrPackageCopyFailed  = fmt.Errorf("failed to copy package contents")
	ErrUnloadFailed       = fmt.Errorf("failed to remove sideloaded package")

	// Config errors.
	ErrEmptyConfigPath  = fmt.Errorf("config file path cannot be empty")
	ErrConfigParse      = fmt.Errorf("failed to parse config")
	ErrConfigValidation = fmt.Errorf("invalid configuration")
	ErrConfigEncode     = fmt.Errorf("failed to encode config")
	ErrConfigDirectory  = fmt.Errorf("failed to create config directory")
	ErrConfigFileCreate = fmt.Errorf("failed to create config file")
	ErrConfigFileRename = fmt.Errorf("failed to replace config file")

	// Hook errors.
	ErrHookExecution = fmt.Errorf("error executing hook")
	ErrHookScript    = fmt.Errorf("hook script error")
	ErrHookLoad      = fmt.Errorf("failed to load hook")
)

// Wrap wraps an error with additional context.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf wraps an error with additional formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
