package cli

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/AlecAivazis/survey/v2"
	"github.com/glorpus-work/elm-sideload/pkg/errors"
	"github.com/glorpus-work/elm-sideload/pkg/installer"
	"github.com/glorpus-work/elm-sideload/pkg/registry"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, cmd *cobra.Command, args ...string) error {
	t.Helper()
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	return cmd.Execute()
}

// setupProject builds a minimal Elm project in a temp directory, points the
// package cache at a second temp directory and chdirs into the project.
func setupProject(t *testing.T) (projectDir, elmHome string) {
	t.Helper()
	projectDir = t.TempDir()
	elmHome = t.TempDir()

	manifest := `{
    "dependencies": {
        "direct": { "elm/html": "1.0.0" },
        "indirect": {}
    },
    "test-dependencies": { "direct": {}, "indirect": {} }
}`
	require.NoError(t, os.WriteFile(filepath.Join(projectDir, "elm.json"), []byte(manifest), 0o644))

	patched := filepath.Join(projectDir, "patched-html", "src")
	require.NoError(t, os.MkdirAll(patched, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(patched, "Html.elm"), []byte("module Html exposing (..)\n"), 0o644))

	t.Chdir(projectDir)
	t.Setenv("ELM_HOME", elmHome)
	t.Setenv("HOME", t.TempDir())

	empty := ""
	off := false
	ConfigPath = &empty
	Verbose = &off
	NoColor = &off
	t.Cleanup(func() {
		ConfigPath = nil
		Verbose = nil
		NoColor = nil
		Prompter = nil
	})
	return projectDir, elmHome
}

func answerConfirm(answer bool) func(survey.Prompt, interface{}, ...survey.AskOpt) error {
	return func(_ survey.Prompt, response interface{}, _ ...survey.AskOpt) error {
		*response.(*bool) = answer
		return nil
	}
}

func TestConfigureInstallUnloadRoundTrip(t *testing.T) {
	projectDir, elmHome := setupProject(t)

	require.NoError(t, execute(t, NewInitCmd()))
	assert.FileExists(t, filepath.Join(projectDir, registry.DefaultFileName))
	ignore, err := os.ReadFile(filepath.Join(projectDir, GitIgnoreFileName))
	require.NoError(t, err)
	assert.Contains(t, string(ignore), LocalCacheIgnoreEntry)

	require.NoError(t, execute(t, NewConfigureCmd(), "elm/html", "--local", "./patched-html"))
	cfg, err := registry.Load(filepath.Join(projectDir, registry.DefaultFileName))
	require.NoError(t, err)
	require.Len(t, cfg.Sideloads, 1)
	assert.Equal(t, "1.0.0", cfg.Sideloads[0].OriginalPackageVersion)

	slot := installer.SlotPath(filepath.Join(elmHome, "0.19.1", "packages"), "elm", "html", "1.0.0")

	// Declining the prompt is a successful no-op.
	Prompter = answerConfirm(false)
	require.NoError(t, execute(t, NewInstallCmd()))
	assert.NoDirExists(t, slot)

	require.NoError(t, execute(t, NewInstallCmd(), "--always"))
	assert.True(t, installer.IsSideloaded(slot))
	assert.FileExists(t, filepath.Join(slot, "src", "Html.elm"))

	require.NoError(t, execute(t, NewUnloadCmd()))
	assert.NoDirExists(t, slot)

	// The registration survives the unload.
	cfg, err = registry.Load(filepath.Join(projectDir, registry.DefaultFileName))
	require.NoError(t, err)
	assert.Len(t, cfg.Sideloads, 1)
}

func TestInstallDryRunWritesNothing(t *testing.T) {
	_, elmHome := setupProject(t)

	require.NoError(t, execute(t, NewInitCmd()))
	require.NoError(t, execute(t, NewConfigureCmd(), "elm/html", "--local", "./patched-html"))

	require.NoError(t, execute(t, NewInstallCmd(), "--dry-run"))

	entries, err := os.ReadDir(elmHome)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestConfigureRejectsUnknownPackage(t *testing.T) {
	setupProject(t)

	require.NoError(t, execute(t, NewInitCmd()))
	err := execute(t, NewConfigureCmd(), "elm/parser", "--local", "./patched-html")
	assert.ErrorIs(t, err, errors.ErrPackageNotFoundInManifest)
}

func TestInstallWithoutConfig(t *testing.T) {
	setupProject(t)

	err := execute(t, NewInstallCmd())
	assert.ErrorIs(t, err, errors.ErrNoSideloadConfigFound)
}

func TestInitRefusesToOverwrite(t *testing.T) {
	setupProject(t)

	require.NoError(t, execute(t, NewInitCmd()))
	assert.Error(t, execute(t, NewInitCmd()))
}
