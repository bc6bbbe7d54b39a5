package gitrepo

import (
	"context"
	"path/filepath"

	"github.com/glorpus-work/elm-sideload/pkg/fsutil"
)

// Commit-log lengths surfaced in diagnostic errors.
const (
	dirtyLogDepth       = 5
	shaNotFoundLogDepth = 10
)

// EnsureAt brings destDir to a clone of url checked out at commitID.
//
// An existing clone is never recloned: its working tree must be clean, it is
// fetched, the commit id is verified to exist and then checked out. A dirty
// tree aborts with DirtyRepoError rather than forcing a reset, and a missing
// commit aborts with ShaNotFoundError. A missing clone is cloned fresh and
// checked out directly.
func EnsureAt(ctx context.Context, client Client, url, destDir, commitID string) error {
	if !fsutil.IsDir(filepath.Join(destDir, ".git")) {
		if err := client.EnsureCloned(ctx, url, destDir); err != nil {
			return err
		}
		if err := client.Checkout(ctx, destDir, commitID); err != nil {
			if exists, existsErr := client.CommitExists(ctx, destDir, commitID); existsErr == nil && !exists {
				return MissingCommitDiagnosis(ctx, client, destDir, commitID)
			}
			return err
		}
		return nil
	}

	// Uncommitted modifications abort unconditionally, even when HEAD is
	// already at the pin: the tree contents would be copied, not the commit.
	clean, status, err := client.IsWorkingTreeClean(ctx, destDir)
	if err != nil {
		return err
	}
	if !clean {
		return DirtyDiagnosis(ctx, client, destDir, status)
	}

	// Short-circuit when the clean clone already sits at the pinned commit,
	// the normal state after registration-time resolution.
	if current, err := client.CurrentCommitID(ctx, destDir); err == nil && current == commitID {
		return nil
	}

	if err := client.FetchLatest(ctx, destDir); err != nil {
		return err
	}

	exists, err := client.CommitExists(ctx, destDir, commitID)
	if err != nil {
		return err
	}
	if !exists {
		return MissingCommitDiagnosis(ctx, client, destDir, commitID)
	}

	return client.Checkout(ctx, destDir, commitID)
}

// DirtyDiagnosis builds a DirtyRepoError enriched with the last few commits
// for operator diagnosis.
func DirtyDiagnosis(ctx context.Context, client Client, repoDir, status string) error {
	log, _ := client.RecentCommitLog(ctx, repoDir, dirtyLogDepth)
	return &DirtyRepoError{RepoDir: repoDir, Status: status, RecentLog: log}
}

// MissingCommitDiagnosis builds a ShaNotFoundError enriched with enough
// history to tell whether a branch moved or was rebased.
func MissingCommitDiagnosis(ctx context.Context, client Client, repoDir, sha string) error {
	log, _ := client.RecentCommitLog(ctx, repoDir, shaNotFoundLogDepth)
	return &ShaNotFoundError{RepoDir: repoDir, SHA: sha, RecentLog: log}
}

// CacheDir computes the clone directory for a remote URL under cacheRoot,
// keyed by the (author, repo) slug.
func CacheDir(cacheRoot, author, repo string) string {
	return filepath.Join(cacheRoot, author, repo)
}
