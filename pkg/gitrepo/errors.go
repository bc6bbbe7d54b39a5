package gitrepo

import (
	"fmt"
	"strings"
)

// Sentinel kinds for classified git failures. Callers branch on these with
// errors.Is to decide retry-vs-abort.
var (
	ErrRepoNotFound = fmt.Errorf("repository not found")
	ErrNetwork      = fmt.Errorf("network error")
	ErrClone        = fmt.Errorf("clone failed")
	ErrCheckout     = fmt.Errorf("checkout failed")
	ErrPull         = fmt.Errorf("pull failed")
	ErrGitMissing   = fmt.Errorf("git executable not found in PATH")
)

// CommandError is the generic fallback for a failed git invocation, carrying
// the command and its raw output for operator diagnosis.
type CommandError struct {
	Args   []string
	Output string
	Err    error
}

// Error implements the error interface for CommandError.
func (e *CommandError) Error() string {
	return fmt.Sprintf("git %s failed: %s", strings.Join(e.Args, " "), strings.TrimSpace(e.Output))
}

// Unwrap returns the underlying error for CommandError.
func (e *CommandError) Unwrap() error {
	return e.Err
}

// DirtyRepoError is returned when a cached clone has uncommitted
// modifications. Local modifications are never discarded silently; the
// status text and recent history are surfaced instead.
type DirtyRepoError struct {
	RepoDir   string
	Status    string
	RecentLog string
}

// Error implements the error interface for DirtyRepoError.
func (e *DirtyRepoError) Error() string {
	return fmt.Sprintf("cached repository %s has uncommitted changes:\n%s\nrecent commits:\n%s",
		e.RepoDir, strings.TrimSpace(e.Status), strings.TrimSpace(e.RecentLog))
}

// ShaNotFoundError is returned when the pinned commit id does not exist in
// the cached repository, typically because the branch moved or was rebased.
type ShaNotFoundError struct {
	RepoDir   string
	SHA       string
	RecentLog string
}

// Error implements the error interface for ShaNotFoundError.
func (e *ShaNotFoundError) Error() string {
	return fmt.Sprintf("commit %s not found in %s\nrecent commits:\n%s",
		e.SHA, e.RepoDir, strings.TrimSpace(e.RecentLog))
}
