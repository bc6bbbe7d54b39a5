package archive

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTarGz(t *testing.T, files map[string]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.tar.gz")

	out, err := os.Create(path)
	require.NoError(t, err)
	gz := gzip.NewWriter(out)
	tw := tar.NewWriter(gz)

	for name, content := range files {
		require.NoError(t, tw.WriteHeader(&tar.Header{
			Name: name,
			Mode: 0o644,
			Size: int64(len(content)),
		}))
		_, err := tw.Write([]byte(content))
		require.NoError(t, err)
	}

	require.NoError(t, tw.Close())
	require.NoError(t, gz.Close())
	require.NoError(t, out.Close())
	return path
}

func TestExtractAll(t *testing.T) {
	archivePath := writeTarGz(t, map[string]string{
		"elm.json":          `{"type": "package"}`,
		"src/Html.elm":      "module Html exposing (..)",
		"src/Html/Lazy.elm": "module Html.Lazy exposing (..)",
	})
	destDir := filepath.Join(t.TempDir(), "slot")

	require.NoError(t, NewManager().ExtractAll(context.Background(), archivePath, destDir))

	data, err := os.ReadFile(filepath.Join(destDir, "src", "Html", "Lazy.elm"))
	require.NoError(t, err)
	assert.Equal(t, "module Html.Lazy exposing (..)", string(data))
	assert.FileExists(t, filepath.Join(destDir, "elm.json"))
}

func TestExtractAllMissingArchive(t *testing.T) {
	err := NewManager().ExtractAll(context.Background(), filepath.Join(t.TempDir(), "nope.tar.gz"), t.TempDir())
	assert.Error(t, err)
}
