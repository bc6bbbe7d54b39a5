package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/glorpus-work/elm-sideload/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleManifest = `{
	"type": "application",
	"elm-version": "0.19.1",
	"dependencies": {
		"direct": {
			"elm/core": "1.0.5",
			"elm/html": "1.0.0"
		},
		"indirect": {
			"elm/virtual-dom": "1.0.3"
		}
	},
	"test-dependencies": {
		"direct": {
			"elm-explorations/test": "2.1.0"
		},
		"indirect": {
			"elm/random": "1.0.0"
		}
	}
}`

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "elm.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	m, err := Load(writeManifest(t, sampleManifest))
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", m.Dependencies.Direct["elm/html"])
	assert.Equal(t, "1.0.0", m.TestDependencies.Indirect["elm/random"])
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "elm.json"))
	assert.ErrorIs(t, err, errors.ErrNoManifestFound)
}

func TestLoadInvalidJSON(t *testing.T) {
	_, err := Load(writeManifest(t, "{not json"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, errors.ErrNoManifestFound)
}

func TestLookupDependency(t *testing.T) {
	m, err := Load(writeManifest(t, sampleManifest))
	require.NoError(t, err)

	tests := []struct {
		name        string
		pkg         string
		wantVersion string
		wantFound   bool
	}{
		{name: "direct", pkg: "elm/html", wantVersion: "1.0.0", wantFound: true},
		{name: "indirect", pkg: "elm/virtual-dom", wantVersion: "1.0.3", wantFound: true},
		{name: "test direct", pkg: "elm-explorations/test", wantVersion: "2.1.0", wantFound: true},
		{name: "test indirect", pkg: "elm/random", wantVersion: "1.0.0", wantFound: true},
		{name: "absent", pkg: "elm/http", wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			version, found := m.LookupDependency(tt.pkg)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.wantVersion, version)
		})
	}
}

func TestLookupDependencyOrder(t *testing.T) {
	// If a name did appear twice, the direct bucket wins.
	m := &Manifest{
		Dependencies: DependencyBuckets{
			Direct:   map[string]string{"elm/core": "1.0.5"},
			Indirect: map[string]string{"elm/core": "0.9.0"},
		},
	}
	version, found := m.LookupDependency("elm/core")
	require.True(t, found)
	assert.Equal(t, "1.0.5", version)
}
