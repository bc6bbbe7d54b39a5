package gitrepo

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/glorpus-work/elm-sideload/pkg/fsutil"
)

// ManagerImpl shells out to the git binary. It keeps no state beyond the
// executable name, so a single value can serve any number of clones.
type ManagerImpl struct {
	gitPath string
}

// NewManager creates a Client backed by the git binary on PATH.
func NewManager() (*ManagerImpl, error) {
	path, err := exec.LookPath("git")
	if err != nil {
		return nil, ErrGitMissing
	}
	return &ManagerImpl{gitPath: path}, nil
}

// run executes git with the given arguments in dir ("" for no working
// directory) and returns the combined output.
func (m *ManagerImpl) run(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, m.gitPath, args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	if err != nil {
		return string(output), &CommandError{Args: args, Output: string(output), Err: err}
	}
	return string(output), nil
}

// classifyRemote refines a remote-operation failure into a network or
// not-found kind when the output identifies one.
func classifyRemote(kind error, cmdErr error) error {
	var output string
	if ce, ok := cmdErr.(*CommandError); ok {
		output = strings.ToLower(ce.Output)
	}
	switch {
	case strings.Contains(output, "could not resolve host"),
		strings.Contains(output, "unable to access"),
		strings.Contains(output, "connection timed out"),
		strings.Contains(output, "connection refused"):
		return fmt.Errorf("%w: %w", ErrNetwork, cmdErr)
	case strings.Contains(output, "repository not found"),
		strings.Contains(output, "does not appear to be a git repository"),
		strings.Contains(output, "not found"):
		return fmt.Errorf("%w: %w", ErrRepoNotFound, cmdErr)
	default:
		return fmt.Errorf("%w: %w", kind, cmdErr)
	}
}

// EnsureCloned clones url into destDir unless a clone already exists there.
func (m *ManagerImpl) EnsureCloned(ctx context.Context, url, destDir string) error {
	if fsutil.IsDir(filepath.Join(destDir, ".git")) {
		return nil
	}
	if err := fsutil.EnsureDir(filepath.Dir(destDir)); err != nil {
		return err
	}
	if _, err := m.run(ctx, "", "clone", url, destDir); err != nil {
		return classifyRemote(ErrClone, err)
	}
	return nil
}

// Checkout moves the working tree to commitID.
func (m *ManagerImpl) Checkout(ctx context.Context, repoDir, commitID string) error {
	if _, err := m.run(ctx, repoDir, "checkout", commitID); err != nil {
		return fmt.Errorf("%w: %w", ErrCheckout, err)
	}
	return nil
}

// CurrentCommitID returns the commit id at HEAD.
func (m *ManagerImpl) CurrentCommitID(ctx context.Context, repoDir string) (string, error) {
	output, err := m.run(ctx, repoDir, "rev-parse", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(output), nil
}

// RecentCommitLog returns the last n commits, one line each.
func (m *ManagerImpl) RecentCommitLog(ctx context.Context, repoDir string, n int) (string, error) {
	output, err := m.run(ctx, repoDir, "log", "--oneline", "-n", fmt.Sprintf("%d", n))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(output), nil
}

// IsWorkingTreeClean reports cleanliness plus the raw porcelain status.
func (m *ManagerImpl) IsWorkingTreeClean(ctx context.Context, repoDir string) (bool, string, error) {
	output, err := m.run(ctx, repoDir, "status", "--porcelain")
	if err != nil {
		return false, "", err
	}
	status := strings.TrimSpace(output)
	return status == "", status, nil
}

// FetchLatest updates the clone. A branch-aware pull is attempted first; a
// detached HEAD has no symbolic ref, so it falls back to a plain fetch
// instead of failing.
func (m *ManagerImpl) FetchLatest(ctx context.Context, repoDir string) error {
	if _, err := m.run(ctx, repoDir, "symbolic-ref", "-q", "HEAD"); err != nil {
		if _, fetchErr := m.run(ctx, repoDir, "fetch", "--all"); fetchErr != nil {
			return classifyRemote(ErrPull, fetchErr)
		}
		return nil
	}
	if _, err := m.run(ctx, repoDir, "pull", "--ff-only"); err != nil {
		return classifyRemote(ErrPull, err)
	}
	return nil
}

// ResolveBranch resolves branch to its current commit id, preferring the
// remote-tracking ref and falling back to a local ref when origin does not
// track the branch.
func (m *ManagerImpl) ResolveBranch(ctx context.Context, repoDir, branch string) (string, error) {
	output, err := m.run(ctx, repoDir, "rev-parse", "--verify", "refs/remotes/origin/"+branch)
	if err != nil {
		output, err = m.run(ctx, repoDir, "rev-parse", "--verify", "refs/heads/"+branch)
		if err != nil {
			return "", err
		}
	}
	return strings.TrimSpace(output), nil
}

// CommitExists reports whether commitID names a commit object in the clone.
func (m *ManagerImpl) CommitExists(ctx context.Context, repoDir, commitID string) (bool, error) {
	if _, err := os.Stat(repoDir); err != nil {
		return false, err
	}
	if _, err := m.run(ctx, repoDir, "cat-file", "-e", commitID+"^{commit}"); err != nil {
		return false, nil
	}
	return true, nil
}
