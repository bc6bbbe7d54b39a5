package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glorpus-work/elm-sideload/internal/logger"
	"github.com/glorpus-work/elm-sideload/internal/prompt"
	"github.com/glorpus-work/elm-sideload/pkg/config"
	"github.com/glorpus-work/elm-sideload/pkg/gitrepo"
	"github.com/glorpus-work/elm-sideload/pkg/hook"
	"github.com/glorpus-work/elm-sideload/pkg/model"
	"github.com/glorpus-work/elm-sideload/pkg/orchestrator"
	"github.com/glorpus-work/elm-sideload/pkg/registry"
)

// These variables will be set by the main package
var (
	ConfigPath *string
	Verbose    *bool
	NoColor    *bool
	// Prompter is replaced in tests to answer confirmation questions.
	Prompter prompt.Prompt
)

// registryPath resolves where the sideload registry lives: an explicit
// --config path wins, otherwise elm-sideload.json in the working directory.
func registryPath() (string, error) {
	if ConfigPath != nil && *ConfigPath != "" {
		return filepath.Abs(*ConfigPath)
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to resolve working directory: %w", err)
	}
	return filepath.Join(wd, registry.DefaultFileName), nil
}

// loadRegistry reads the sideload registry and returns it together with
// the directory it lives in (relative paths resolve against that) and its
// own path for persisting updates.
func loadRegistry() (cfg *registry.Config, configDir, path string, err error) {
	path, err = registryPath()
	if err != nil {
		return nil, "", "", err
	}
	cfg, err = registry.Load(path)
	if err != nil {
		return nil, "", "", err
	}
	return cfg, filepath.Dir(path), path, nil
}

// loadSettings reads the tool settings, falling back to defaults when no
// settings file exists yet.
func loadSettings() (*config.Config, error) {
	settingsPath, err := config.GetDefaultConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get default config path: %w", err)
	}
	cfg, err := config.LoadConfig(settingsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if Verbose != nil && *Verbose {
		cfg.Settings.LogLevel = "debug"
	}
	return cfg, nil
}

// newOrchestrator wires the pipeline from the tool settings. A missing git
// binary is tolerated here; operations that actually need git report it.
func newOrchestrator(settings *config.Config) *orchestrator.Orchestrator {
	var git gitrepo.Client
	if manager, err := gitrepo.NewManager(); err == nil {
		git = manager
	} else {
		logger.Debugf("git unavailable: %v", err)
	}

	hooks := hook.NewTengoExecutor()
	if settings.Settings.HooksDir != "" {
		if err := hook.LoadFromDir(hooks, settings.Settings.HooksDir); err != nil {
			logger.Warnf("failed to load hooks from %s: %v", settings.Settings.HooksDir, err)
		}
	}

	return &orchestrator.Orchestrator{
		Git:             git,
		HookManager:     hooks,
		CacheRoot:       settings.Settings.CacheDir,
		CompilerVersion: settings.Settings.CompilerVersion,
		Env:             model.SystemEnvironment(),
		Hooks: orchestrator.Hooks{OnEvent: func(e orchestrator.Event) {
			if e.ID != "" {
				logger.Debugf("%s: %s (%s)", e.Phase, e.Msg, e.ID)
			} else {
				logger.Debugf("%s: %s", e.Phase, e.Msg)
			}
		}},
	}
}

func prompter() prompt.Prompt {
	if Prompter != nil {
		return Prompter
	}
	return prompt.New()
}
