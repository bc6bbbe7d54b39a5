package orchestrator

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	version "github.com/hashicorp/go-version"

	"github.com/glorpus-work/elm-sideload/pkg/errors"
	"github.com/glorpus-work/elm-sideload/pkg/fsutil"
	"github.com/glorpus-work/elm-sideload/pkg/gitrepo"
	"github.com/glorpus-work/elm-sideload/pkg/hook"
	"github.com/glorpus-work/elm-sideload/pkg/installer"
	"github.com/glorpus-work/elm-sideload/pkg/manifest"
	"github.com/glorpus-work/elm-sideload/pkg/model"
	"github.com/glorpus-work/elm-sideload/pkg/registry"
	"github.com/glorpus-work/elm-sideload/pkg/source"
)

// Register resolves a source description for pkgName and returns an updated
// copy of cfg with the registration added or replaced. The package must
// appear in the project manifest; branch references are pinned to a commit
// here and never stored. cfg itself is not modified and nothing is
// persisted, so a failed registration leaves the config file untouched.
func (o *Orchestrator) Register(ctx context.Context, cfg *registry.Config, configDir, pkgName string, raw source.RawInput) (*registry.Config, model.Registration, error) {
	var reg model.Registration

	if _, _, err := model.SplitPackageName(pkgName); err != nil {
		return nil, reg, err
	}

	m, err := manifest.Load(cfg.ManifestPath(configDir))
	if err != nil {
		return nil, reg, err
	}
	ver, ok := m.LookupDependency(pkgName)
	if !ok {
		return nil, reg, errors.Wrapf(errors.ErrPackageNotFoundInManifest, "package %s", pkgName)
	}
	if _, err := version.NewVersion(ver); err != nil {
		return nil, reg, errors.Wrapf(errors.ErrInvalidSideloadConfig, "manifest version %q for %s", ver, pkgName)
	}

	if raw.URL != "" && o.Git == nil {
		return nil, reg, gitrepo.ErrGitMissing
	}
	resolver := source.NewResolver(o.Git, o.CacheRoot)
	src, err := resolver.Resolve(ctx, raw)
	if err != nil {
		return nil, reg, err
	}

	reg = model.Registration{
		OriginalPackageName:    pkgName,
		OriginalPackageVersion: ver,
		SideloadedPackage:      src,
	}
	return cfg.Upsert(reg), reg, nil
}

// acquired holds a registration together with the local directory or
// archive its override contents will be copied from.
type acquired struct {
	reg  model.Registration
	dir  string // directory source, empty for archives
	file string // archive source, empty for directories
}

// Install materializes every registered override into the package cache.
// All sources are acquired before any slot is touched, so a single
// unavailable source aborts the run with the cache unchanged. With
// opts.DryRun the same change summary is computed and returned without
// acquiring or writing anything.
func (o *Orchestrator) Install(ctx context.Context, cfg *registry.Config, configDir string, opts InstallOptions) ([]model.AppliedChange, error) {
	manifestPath := cfg.ManifestPath(configDir)
	if _, err := manifest.Load(manifestPath); err != nil {
		return nil, err
	}

	root, err := installer.PackagesRoot(o.Env, opts.ElmHome, cfg.RequireElmHome, o.CompilerVersion)
	if err != nil {
		return nil, err
	}

	changes := make([]model.AppliedChange, 0, len(cfg.Sideloads))
	for _, reg := range cfg.Sideloads {
		changes = append(changes, model.AppliedChange{
			PackageName: reg.OriginalPackageName,
			Action:      model.ActionSideloaded,
			Source:      reg.SideloadedPackage.Describe(),
		})
	}
	if opts.DryRun {
		for _, c := range changes {
			emit(o.Hooks, Event{Phase: "validating", ID: c.PackageName, Msg: "would sideload from " + c.Source})
		}
		return changes, nil
	}

	sources, err := o.acquireAll(ctx, cfg.Sideloads)
	if err != nil {
		return nil, err
	}

	for _, a := range sources {
		if err := o.apply(ctx, root, a); err != nil {
			return nil, err
		}
		emit(o.Hooks, Event{Phase: "applying", ID: a.reg.OriginalPackageName, Msg: "sideloaded from " + a.reg.SideloadedPackage.Describe()})
	}

	if err := installer.BustBuildCache(filepath.Dir(manifestPath), o.CompilerVersion); err != nil {
		return nil, err
	}
	emit(o.Hooks, Event{Phase: "done", Msg: fmt.Sprintf("sideloaded %d package(s)", len(changes))})
	return changes, nil
}

// acquireAll fetches or locates every override source. Failures are
// collected across all registrations so the error names which packages
// were available and which were not.
func (o *Orchestrator) acquireAll(ctx context.Context, regs []model.Registration) ([]acquired, error) {
	out := make([]acquired, 0, len(regs))
	var available, unavailable []string
	var firstErr error

	for _, reg := range regs {
		emit(o.Hooks, Event{Phase: "acquiring", ID: reg.OriginalPackageName, Msg: reg.SideloadedPackage.Describe()})
		a, err := o.acquire(ctx, reg)
		if err != nil {
			unavailable = append(unavailable, reg.OriginalPackageName)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		available = append(available, reg.OriginalPackageName)
		out = append(out, a)
	}
	if firstErr != nil {
		return nil, fmt.Errorf("acquiring sources (available: %s; unavailable: %s): %w",
			joinOrNone(available), joinOrNone(unavailable), firstErr)
	}
	return out, nil
}

func joinOrNone(names []string) string {
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ", ")
}

func (o *Orchestrator) acquire(ctx context.Context, reg model.Registration) (acquired, error) {
	src := reg.SideloadedPackage
	switch src.Type {
	case model.SourceGitHub:
		if o.Git == nil {
			return acquired{}, gitrepo.ErrGitMissing
		}
		author, repo, err := model.RepoSlug(src.URL)
		if err != nil {
			return acquired{}, err
		}
		dir := gitrepo.CacheDir(o.CacheRoot, author, repo)
		if err := gitrepo.EnsureAt(ctx, o.Git, src.URL, dir, src.PinTo.SHA); err != nil {
			return acquired{}, err
		}
		return acquired{reg: reg, dir: dir}, nil
	case model.SourceRelative:
		dir := src.Path
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(o.Env.WorkDir, dir)
		}
		if !fsutil.IsDir(dir) {
			return acquired{}, errors.Wrapf(errors.ErrPackageCopyFailed, "source directory %s does not exist", dir)
		}
		return acquired{reg: reg, dir: dir}, nil
	case model.SourceArchive:
		file := src.Path
		if !filepath.IsAbs(file) {
			file = filepath.Join(o.Env.WorkDir, file)
		}
		if !fsutil.Exists(file) {
			return acquired{}, errors.Wrapf(errors.ErrPackageCopyFailed, "archive %s does not exist", file)
		}
		return acquired{reg: reg, file: file}, nil
	default:
		return acquired{}, errors.Wrapf(errors.ErrInvalidSideloadConfig, "unknown source type %q", src.Type)
	}
}

func (o *Orchestrator) apply(ctx context.Context, root string, a acquired) error {
	author, name, err := model.SplitPackageName(a.reg.OriginalPackageName)
	if err != nil {
		return err
	}
	slot := installer.SlotPath(root, author, name, a.reg.OriginalPackageVersion)

	hctx := o.hookContext(a.reg, slot)
	if err := o.runHook(hook.PreInstall, hctx); err != nil {
		return err
	}
	if a.file != "" {
		err = installer.ReplaceWithArchive(ctx, slot, a.file)
	} else {
		err = installer.ReplaceWithDir(slot, a.dir)
	}
	if err != nil {
		return err
	}
	return o.runHook(hook.PostInstall, hctx)
}

// Unload removes every sideloaded slot from the package cache so the
// compiler re-fetches official copies on the next build. Registrations
// stay in the config; a slot that is already absent counts as restored.
func (o *Orchestrator) Unload(ctx context.Context, cfg *registry.Config, configDir string, opts UnloadOptions) ([]model.AppliedChange, error) {
	// No manifest read here: restoring must stay possible even when the
	// project's elm.json is gone. The project dir for cache busting comes
	// from the configured manifest location alone.
	manifestPath := cfg.ManifestPath(configDir)

	root, err := installer.PackagesRoot(o.Env, opts.ElmHome, cfg.RequireElmHome, o.CompilerVersion)
	if err != nil {
		return nil, err
	}

	changes := make([]model.AppliedChange, 0, len(cfg.Sideloads))
	for _, reg := range cfg.Sideloads {
		changes = append(changes, model.AppliedChange{
			PackageName: reg.OriginalPackageName,
			Action:      model.ActionRestored,
			Source:      model.OfficialSourceDescription,
		})
	}
	if opts.DryRun {
		return changes, nil
	}

	for _, reg := range cfg.Sideloads {
		author, name, err := model.SplitPackageName(reg.OriginalPackageName)
		if err != nil {
			return nil, err
		}
		slot := installer.SlotPath(root, author, name, reg.OriginalPackageVersion)

		hctx := o.hookContext(reg, slot)
		if err := o.runHook(hook.PreUnload, hctx); err != nil {
			return nil, err
		}
		emit(o.Hooks, Event{Phase: "removing", ID: reg.OriginalPackageName})
		if err := installer.RemoveSlot(slot); err != nil {
			return nil, err
		}
		if err := o.runHook(hook.PostUnload, hctx); err != nil {
			return nil, err
		}
	}

	if err := installer.BustBuildCache(filepath.Dir(manifestPath), o.CompilerVersion); err != nil {
		return nil, err
	}
	emit(o.Hooks, Event{Phase: "done", Msg: fmt.Sprintf("restored %d package(s)", len(changes))})
	return changes, nil
}

func (o *Orchestrator) hookContext(reg model.Registration, slot string) hook.Context {
	return hook.Context{
		PackageName:    reg.OriginalPackageName,
		PackageVersion: reg.OriginalPackageVersion,
		SlotPath:       slot,
		Source:         reg.SideloadedPackage.Describe(),
	}
}

func (o *Orchestrator) runHook(t hook.Type, hctx hook.Context) error {
	if o.HookManager == nil || !o.HookManager.HasHook(t) {
		return nil
	}
	return o.HookManager.Execute(t, hctx)
}
