package installer

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/glorpus-work/elm-sideload/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePackageTree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".git"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "elm.json"), []byte(`{"type":"package"}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "Html.elm"), []byte("module Html"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".git", "HEAD"), []byte("ref"), 0o644))
	return dir
}

func TestSlotPath(t *testing.T) {
	assert.Equal(t,
		filepath.Join("/elm", "0.19.1", "packages", "elm", "html", "1.0.0"),
		SlotPath(filepath.Join("/elm", "0.19.1", "packages"), "elm", "html", "1.0.0"))
}

func TestReplaceWithDir(t *testing.T) {
	src := writePackageTree(t)
	slot := filepath.Join(t.TempDir(), "elm", "html", "1.0.0")

	// Pre-populate the slot with original content and stale artifact caches.
	require.NoError(t, os.MkdirAll(slot, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(slot, "old.elm"), []byte("old"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(slot, "artifacts.dat"), []byte("stale"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(slot, "artifacts.x.dat"), []byte("stale"), 0o644))

	require.NoError(t, ReplaceWithDir(slot, src))

	// Replacement is wholesale: old contents and artifact caches are gone.
	assert.NoFileExists(t, filepath.Join(slot, "old.elm"))
	assert.NoFileExists(t, filepath.Join(slot, "artifacts.dat"))
	assert.NoFileExists(t, filepath.Join(slot, "artifacts.x.dat"))

	assert.FileExists(t, filepath.Join(slot, "src", "Html.elm"))
	assert.NoDirExists(t, filepath.Join(slot, ".git"))
	assert.True(t, IsSideloaded(slot))

	// No staging residue.
	assert.NoDirExists(t, slot+stagingSuffix)
}

func TestReplaceWithDirCreatesAbsentSlot(t *testing.T) {
	src := writePackageTree(t)
	slot := filepath.Join(t.TempDir(), "elm", "html", "1.0.0")

	require.NoError(t, ReplaceWithDir(slot, src))
	assert.True(t, IsSideloaded(slot))
}

func TestReplaceWithDirMissingSource(t *testing.T) {
	slot := filepath.Join(t.TempDir(), "elm", "html", "1.0.0")

	err := ReplaceWithDir(slot, filepath.Join(t.TempDir(), "absent"))
	assert.ErrorIs(t, err, errors.ErrPackageCopyFailed)
	assert.NoDirExists(t, slot)
}

func TestReplaceWithArchiveMissingArchive(t *testing.T) {
	slot := filepath.Join(t.TempDir(), "elm", "html", "1.0.0")

	err := ReplaceWithArchive(context.Background(), slot, filepath.Join(t.TempDir(), "absent.tar.gz"))
	assert.ErrorIs(t, err, errors.ErrPackageCopyFailed)
}

func TestDeleteArtifactCachesMissingIsSuccess(t *testing.T) {
	assert.NoError(t, DeleteArtifactCaches(filepath.Join(t.TempDir(), "absent-slot")))
}

func TestRemoveSlot(t *testing.T) {
	slot := filepath.Join(t.TempDir(), "elm", "html", "1.0.0")
	require.NoError(t, os.MkdirAll(slot, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(slot, "elm.json"), []byte("{}"), 0o644))

	require.NoError(t, RemoveSlot(slot))
	assert.NoDirExists(t, slot)

	// Removing an absent slot is a no-op.
	require.NoError(t, RemoveSlot(slot))
}

func TestBustBuildCache(t *testing.T) {
	project := t.TempDir()
	cache := filepath.Join(project, "elm-stuff", "0.19.1")
	require.NoError(t, os.MkdirAll(cache, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cache, "o.dat"), []byte("obj"), 0o644))

	require.NoError(t, BustBuildCache(project, "0.19.1"))
	assert.NoDirExists(t, cache)

	// Busting an absent cache is fine.
	require.NoError(t, BustBuildCache(project, "0.19.1"))
}
