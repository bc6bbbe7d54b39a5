//go:generate mockgen -destination=./mocks/gitrepo.go -package=mocks . Client

// Package gitrepo owns the local cache of cloned override sources. All
// operations are thin wrappers over git subprocess invocations; the design
// constraint is error classification, not the commands themselves.
package gitrepo

import "context"

// Client is the version-control collaborator interface consumed by the
// resolver and the install pipeline.
type Client interface {
	// EnsureCloned clones url into destDir if no clone exists there yet.
	EnsureCloned(ctx context.Context, url, destDir string) error
	// Checkout moves the working tree to the given commit id (detached HEAD).
	Checkout(ctx context.Context, repoDir, commitID string) error
	// CurrentCommitID returns the commit id the working tree is at.
	CurrentCommitID(ctx context.Context, repoDir string) (string, error)
	// RecentCommitLog returns a one-line-per-commit log of the last n commits.
	RecentCommitLog(ctx context.Context, repoDir string, n int) (string, error)
	// IsWorkingTreeClean reports whether the working tree has no uncommitted
	// modifications, along with the raw status text when it does.
	IsWorkingTreeClean(ctx context.Context, repoDir string) (bool, string, error)
	// FetchLatest updates the clone from its origin. It tolerates a detached
	// HEAD, the normal state after checking out a fixed commit id.
	FetchLatest(ctx context.Context, repoDir string) error
	// ResolveBranch resolves a branch name to its current commit id,
	// preferring the remote-tracking ref over a local one.
	ResolveBranch(ctx context.Context, repoDir, branch string) (string, error)
	// CommitExists reports whether the given commit id exists in the clone.
	CommitExists(ctx context.Context, repoDir, commitID string) (bool, error)
}
