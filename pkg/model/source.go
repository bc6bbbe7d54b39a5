// Package model provides the data structures shared between the registry,
// resolver and installer of elm-sideload.
package model

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/glorpus-work/elm-sideload/pkg/errors"
	version "github.com/hashicorp/go-version"
)

// SourceType discriminates the override source union.
type SourceType string

// Supported override source types.
const (
	// SourceGitHub is a remote repository pinned to a commit id.
	SourceGitHub SourceType = "github"
	// SourceRelative is a local directory, relative or absolute.
	SourceRelative SourceType = "relative"
	// SourceArchive is a local archive file (.tar.gz, .zip) extracted into the slot.
	SourceArchive SourceType = "archive"
)

// Pin fixes a remote source to one immutable commit identifier.
type Pin struct {
	SHA string `json:"sha"`
}

// OverrideSource describes where a package's replacement content comes from.
// A persisted github source always carries a pin: branch names are resolved
// to a commit id at registration time and never stored.
type OverrideSource struct {
	Type  SourceType `json:"type"`
	URL   string     `json:"url,omitempty"`
	PinTo *Pin       `json:"pinTo,omitempty"`
	Path  string     `json:"path,omitempty"`
}

// shaPattern matches a full 40-character hexadecimal commit id.
var shaPattern = regexp.MustCompile(`^[0-9a-f]{40}$`)

// IsFullSHA reports whether s is a full 40-character hexadecimal commit id.
func IsFullSHA(s string) bool {
	return shaPattern.MatchString(strings.ToLower(s)) && s == strings.ToLower(s)
}

// Validate checks the structural invariants of the source.
func (s OverrideSource) Validate() error {
	switch s.Type {
	case SourceGitHub:
		if s.URL == "" {
			return errors.Wrap(errors.ErrInvalidRemoteReference, "github source requires a url")
		}
		if s.PinTo == nil || !IsFullSHA(s.PinTo.SHA) {
			return errors.Wrap(errors.ErrInvalidRemoteReference, "github source must be pinned to a 40-character commit id")
		}
		if _, _, err := RepoSlug(s.URL); err != nil {
			return err
		}
		return nil
	case SourceRelative, SourceArchive:
		if s.Path == "" {
			return errors.Wrapf(errors.ErrInvalidSideloadConfig, "%s source requires a path", s.Type)
		}
		return nil
	default:
		return errors.Wrapf(errors.ErrInvalidSideloadConfig, "unknown source type %q", s.Type)
	}
}

// Describe returns a short human-readable description of the source,
// used in the applied-change summary.
func (s OverrideSource) Describe() string {
	switch s.Type {
	case SourceGitHub:
		if s.PinTo != nil {
			return fmt.Sprintf("%s @ %s", s.URL, s.PinTo.SHA)
		}
		return s.URL
	default:
		return s.Path
	}
}

// RepoSlug derives the (author, repo) cache key from a remote URL's last two
// path segments, stripping any .git suffix. At most one cached clone exists
// per pair; two sources that normalize to the same pair share a clone.
func RepoSlug(rawURL string) (author, repo string, err error) {
	trimmed := strings.TrimSuffix(strings.TrimRight(rawURL, "/"), ".git")
	// Normalize scp-like syntax (git@github.com:author/repo) to path form.
	if !strings.Contains(trimmed, "://") {
		trimmed = strings.Replace(trimmed, ":", "/", 1)
	}
	parts := strings.Split(trimmed, "/")
	if len(parts) < 2 {
		return "", "", errors.Wrapf(errors.ErrInvalidRemoteReference, "cannot derive author/repo from %q", rawURL)
	}
	author, repo = parts[len(parts)-2], parts[len(parts)-1]
	if author == "" || repo == "" || strings.Contains(author, ":") {
		return "", "", errors.Wrapf(errors.ErrInvalidRemoteReference, "cannot derive author/repo from %q", rawURL)
	}
	return author, repo, nil
}

// Registration maps an original package identity to its override source.
// Entries are never mutated in place; replacing re-creates the entry.
type Registration struct {
	OriginalPackageName    string         `json:"originalPackageName"`
	OriginalPackageVersion string         `json:"originalPackageVersion"`
	SideloadedPackage      OverrideSource `json:"sideloadedPackage"`
}

// SplitPackageName splits an author/name package identity into its parts.
func SplitPackageName(name string) (author, pkg string, err error) {
	parts := strings.Split(name, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", errors.Wrapf(errors.ErrInvalidPackageName, "%q", name)
	}
	return parts[0], parts[1], nil
}

// GetVersion returns the parsed captured version, or nil if it does not parse.
func (r Registration) GetVersion() *version.Version {
	v, err := version.NewVersion(r.OriginalPackageVersion)
	if err != nil {
		return nil
	}
	return v
}

// Applied-change actions.
const (
	// ActionSideloaded marks a slot replaced with override content.
	ActionSideloaded = "sideloaded"
	// ActionRestored marks a slot handed back to the official package repository.
	ActionRestored = "restored"
)

// OfficialSourceDescription is the fixed source descriptor reported on unload.
const OfficialSourceDescription = "official package repository"

// AppliedChange records one package the pipeline acted on.
type AppliedChange struct {
	PackageName string
	Action      string
	Source      string
}
