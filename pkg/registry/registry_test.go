package registry

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/glorpus-work/elm-sideload/pkg/errors"
	"github.com/glorpus-work/elm-sideload/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSHA = "0123456789abcdef0123456789abcdef01234567"

func githubReg(name, sha string) model.Registration {
	return model.Registration{
		OriginalPackageName:    name,
		OriginalPackageVersion: "1.0.0",
		SideloadedPackage: model.OverrideSource{
			Type:  model.SourceGitHub,
			URL:   "https://github.com/patched/" + filepath.Base(name),
			PinTo: &model.Pin{SHA: sha},
		},
	}
}

func relativeReg(name, path string) model.Registration {
	return model.Registration{
		OriginalPackageName:    name,
		OriginalPackageVersion: "1.0.0",
		SideloadedPackage:      model.OverrideSource{Type: model.SourceRelative, Path: path},
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), DefaultFileName))
	assert.ErrorIs(t, err, errors.ErrNoSideloadConfigFound)
}

func TestLoadInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))

	_, err := Load(path)
	assert.ErrorIs(t, err, errors.ErrInvalidSideloadConfig)
}

func TestLoadRejectsBranchKeys(t *testing.T) {
	// A github source without a pinned sha must never load: branch names do
	// not survive registration.
	path := filepath.Join(t.TempDir(), DefaultFileName)
	content := `{
		"elmJsonPath": "elm.json",
		"requireElmHome": false,
		"sideloads": [{
			"originalPackageName": "elm/html",
			"originalPackageVersion": "1.0.0",
			"sideloadedPackage": {"type": "github", "url": "https://github.com/patched/html"}
		}]
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := Load(path)
	assert.ErrorIs(t, err, errors.ErrInvalidRemoteReference)
}

func TestPersistRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)

	cfg := Default().Upsert(githubReg("elm/html", testSHA))
	cfg.RequireElmHome = true
	require.NoError(t, cfg.Persist(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)

	// The persisted file carries the documented key names.
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var shape map[string]any
	require.NoError(t, json.Unmarshal(raw, &shape))
	assert.Contains(t, shape, "elmJsonPath")
	assert.Contains(t, shape, "requireElmHome")
	assert.Contains(t, shape, "sideloads")
}

func TestUpsertIsIdempotent(t *testing.T) {
	cfg := Default()

	first := cfg.Upsert(githubReg("elm/html", testSHA))
	second := first.Upsert(relativeReg("elm/html", "./patched-html"))

	require.Len(t, second.Sideloads, 1)
	assert.Equal(t, model.SourceRelative, second.Sideloads[0].SideloadedPackage.Type)
	assert.Equal(t, "./patched-html", second.Sideloads[0].SideloadedPackage.Path)

	// The earlier value is untouched: Upsert is pure.
	require.Len(t, first.Sideloads, 1)
	assert.Equal(t, model.SourceGitHub, first.Sideloads[0].SideloadedPackage.Type)
}

func TestUpsertPreservesOtherRegistrations(t *testing.T) {
	cfg := Default().
		Upsert(relativeReg("elm/html", "./patched-html")).
		Upsert(relativeReg("elm/json", "./patched-json")).
		Upsert(relativeReg("elm/html", "./patched-html-v2"))

	require.Len(t, cfg.Sideloads, 2)
	assert.Equal(t, "elm/json", cfg.Sideloads[0].OriginalPackageName)
	assert.Equal(t, "elm/html", cfg.Sideloads[1].OriginalPackageName)
	assert.Equal(t, "./patched-html-v2", cfg.Sideloads[1].SideloadedPackage.Path)
}

func TestPersistRejectsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFileName)

	cfg := Default()
	cfg.Sideloads = []model.Registration{{
		OriginalPackageName: "not-a-package",
		SideloadedPackage:   model.OverrideSource{Type: model.SourceRelative, Path: "./x"},
	}}

	err := cfg.Persist(path)
	assert.ErrorIs(t, err, errors.ErrInvalidPackageName)
	assert.NoFileExists(t, path)
}

func TestValidateRejectsUnparsableVersion(t *testing.T) {
	cfg := Default()
	cfg.Sideloads = []model.Registration{{
		OriginalPackageName:    "elm/html",
		OriginalPackageVersion: "latest",
		SideloadedPackage:      model.OverrideSource{Type: model.SourceRelative, Path: "./x"},
	}}

	assert.ErrorIs(t, cfg.Validate(), errors.ErrInvalidSideloadConfig)
}

func TestManifestPath(t *testing.T) {
	cfg := Default()
	assert.Equal(t, filepath.Join("/project", "elm.json"), cfg.ManifestPath("/project"))

	cfg.ElmJSONPath = "/absolute/elm.json"
	assert.Equal(t, "/absolute/elm.json", cfg.ManifestPath("/project"))
}
