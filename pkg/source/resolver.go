// Package source turns a user-declared override input into an immutable,
// addressable override source. Remote refs are pinned to a fixed commit id
// here, at registration time, so a later install reproduces exactly the same
// content regardless of upstream branch movement.
package source

import (
	"context"
	"path/filepath"

	"github.com/glorpus-work/elm-sideload/pkg/errors"
	"github.com/glorpus-work/elm-sideload/pkg/fsutil"
	"github.com/glorpus-work/elm-sideload/pkg/gitrepo"
	"github.com/glorpus-work/elm-sideload/pkg/model"
)

// RawInput is the unresolved override source the user declared. Exactly one
// of the variants must be populated: URL with Branch or SHA, Path, or
// ArchivePath.
type RawInput struct {
	URL         string
	Branch      string
	SHA         string
	Path        string
	ArchivePath string
}

// Resolver resolves raw inputs, cloning remote sources into the cache as a
// byproduct. The prefetch is intentional: install reuses the clone.
type Resolver struct {
	Git       gitrepo.Client
	CacheRoot string
}

// NewResolver creates a Resolver caching clones under cacheRoot.
func NewResolver(git gitrepo.Client, cacheRoot string) *Resolver {
	return &Resolver{Git: git, CacheRoot: cacheRoot}
}

// Resolve turns in into an immutable OverrideSource. Local paths resolve to
// themselves without an existence check; existence is validated at install
// time. Remote refs are cloned, resolved to a commit id and checked out.
func (r *Resolver) Resolve(ctx context.Context, in RawInput) (model.OverrideSource, error) {
	switch {
	case in.Path != "":
		if in.URL != "" || in.ArchivePath != "" {
			return model.OverrideSource{}, errors.Wrap(errors.ErrInvalidRemoteReference, "local path excludes other source kinds")
		}
		return model.OverrideSource{Type: model.SourceRelative, Path: in.Path}, nil

	case in.ArchivePath != "":
		if in.URL != "" {
			return model.OverrideSource{}, errors.Wrap(errors.ErrInvalidRemoteReference, "archive path excludes other source kinds")
		}
		return model.OverrideSource{Type: model.SourceArchive, Path: in.ArchivePath}, nil

	case in.URL != "":
		return r.resolveRemote(ctx, in)

	default:
		return model.OverrideSource{}, errors.Wrap(errors.ErrInvalidRemoteReference, "no source given")
	}
}

func (r *Resolver) resolveRemote(ctx context.Context, in RawInput) (model.OverrideSource, error) {
	if (in.SHA == "") == (in.Branch == "") {
		return model.OverrideSource{}, errors.Wrap(errors.ErrInvalidRemoteReference, "remote source requires exactly one of --branch or --sha")
	}
	if in.SHA != "" && !model.IsFullSHA(in.SHA) {
		return model.OverrideSource{}, errors.Wrapf(errors.ErrInvalidRemoteReference, "%q is not a full 40-character commit id", in.SHA)
	}

	author, repo, err := model.RepoSlug(in.URL)
	if err != nil {
		return model.OverrideSource{}, err
	}
	cloneDir := gitrepo.CacheDir(r.CacheRoot, author, repo)

	// Reuse an existing clone rather than recloning, but surface a dirty
	// working tree instead of silently overwriting it.
	if fsutil.IsDir(filepath.Join(cloneDir, ".git")) {
		clean, status, err := r.Git.IsWorkingTreeClean(ctx, cloneDir)
		if err != nil {
			return model.OverrideSource{}, err
		}
		if !clean {
			return model.OverrideSource{}, gitrepo.DirtyDiagnosis(ctx, r.Git, cloneDir, status)
		}
		if err := r.Git.FetchLatest(ctx, cloneDir); err != nil {
			return model.OverrideSource{}, err
		}
	} else if err := r.Git.EnsureCloned(ctx, in.URL, cloneDir); err != nil {
		return model.OverrideSource{}, err
	}

	sha := in.SHA
	if in.Branch != "" {
		sha, err = r.Git.ResolveBranch(ctx, cloneDir, in.Branch)
		if err != nil {
			return model.OverrideSource{}, errors.Wrapf(err, "cannot resolve branch %q", in.Branch)
		}
	}

	exists, err := r.Git.CommitExists(ctx, cloneDir, sha)
	if err != nil {
		return model.OverrideSource{}, err
	}
	if !exists {
		return model.OverrideSource{}, gitrepo.MissingCommitDiagnosis(ctx, r.Git, cloneDir, sha)
	}
	if err := r.Git.Checkout(ctx, cloneDir, sha); err != nil {
		return model.OverrideSource{}, err
	}

	return model.OverrideSource{
		Type:  model.SourceGitHub,
		URL:   in.URL,
		PinTo: &model.Pin{SHA: sha},
	}, nil
}
