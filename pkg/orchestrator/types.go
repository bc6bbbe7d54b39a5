package orchestrator

import (
	"github.com/glorpus-work/elm-sideload/pkg/gitrepo"
	"github.com/glorpus-work/elm-sideload/pkg/hook"
	"github.com/glorpus-work/elm-sideload/pkg/model"
)

// Orchestrator ties the registry, source resolver and slot installer
// together for the configure, install and unload pipelines.
type Orchestrator struct {
	Git gitrepo.Client
	// HookManager is optional; no hooks run when it is nil.
	HookManager     hook.Manager
	CacheRoot       string
	CompilerVersion string
	Env             model.Environment
	// Hooks carries progress callbacks, not lifecycle scripts.
	Hooks Hooks
}

// Event represents a simple progress notification.
type Event struct {
	Phase string // validating|acquiring|applying|removing|done
	ID    string // package name
	Msg   string
}

// Hooks carries callbacks for progress events.
type Hooks struct {
	OnEvent func(Event)
}

// InstallOptions control install execution.
type InstallOptions struct {
	// DryRun reports the change summary without acquiring or applying
	// anything: no network, no writes beyond reading config.
	DryRun bool
	// ElmHome overrides the package-cache root resolution.
	ElmHome string
}

// UnloadOptions control unload execution.
type UnloadOptions struct {
	DryRun  bool
	ElmHome string
}

func emit(h Hooks, e Event) {
	if h.OnEvent != nil {
		h.OnEvent(e)
	}
}
