// Package manifest reads the host package manager's elm.json. The file is
// externally owned and strictly read-only to elm-sideload; the only query the
// pipeline needs is whether a package appears in the dependency union and at
// what version.
package manifest

import (
	"encoding/json"
	"os"

	"github.com/glorpus-work/elm-sideload/pkg/errors"
)

// DependencyBuckets holds one of the two name->version map pairs in elm.json.
type DependencyBuckets struct {
	Direct   map[string]string `json:"direct"`
	Indirect map[string]string `json:"indirect"`
}

// Manifest is the subset of elm.json the pipeline reads.
type Manifest struct {
	Dependencies     DependencyBuckets `json:"dependencies"`
	TestDependencies DependencyBuckets `json:"test-dependencies"`
}

// Load reads and parses the manifest at path. A missing file is reported as
// ErrNoManifestFound so callers can distinguish it from malformed content.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(errors.ErrNoManifestFound, "%s", path)
		}
		return nil, errors.Wrapf(err, "failed to read manifest %s", path)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrapf(err, "failed to parse manifest %s", path)
	}
	return &m, nil
}

// LookupDependency searches the dependency union for name and returns its
// declared version. The lookup order is fixed: direct, indirect, test-direct,
// test-indirect. A name should not legitimately appear twice; the first match
// wins.
func (m *Manifest) LookupDependency(name string) (string, bool) {
	for _, bucket := range []map[string]string{
		m.Dependencies.Direct,
		m.Dependencies.Indirect,
		m.TestDependencies.Direct,
		m.TestDependencies.Indirect,
	} {
		if version, ok := bucket[name]; ok {
			return version, true
		}
	}
	return "", false
}
