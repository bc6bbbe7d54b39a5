package installer

import (
	"context"
	"os"
	"path/filepath"

	"github.com/glorpus-work/elm-sideload/pkg/archive"
	"github.com/glorpus-work/elm-sideload/pkg/errors"
	"github.com/glorpus-work/elm-sideload/pkg/fsutil"
)

const (
	// MarkerFileName is the zero-byte file written into an overridden slot
	// so later tooling can detect it.
	MarkerFileName = ".elm-sideload"

	// Compiled-artifact cache files the host compiler keys by directory
	// mtime rather than content. They must go before new content arrives.
	artifactsFileName  = "artifacts.dat"
	artifactsXFileName = "artifacts.x.dat"

	// buildCacheDirName is the per-project compiler build cache directory.
	buildCacheDirName = "elm-stuff"

	stagingSuffix = ".elm-sideload.staging"
)

// SlotPath computes the installed package slot for a package identity.
func SlotPath(packagesRoot, author, name, version string) string {
	return filepath.Join(packagesRoot, author, name, version)
}

// DeleteArtifactCaches removes the compiled-artifact cache files from a
// slot. Missing files are success, not FileNotFound.
func DeleteArtifactCaches(slotPath string) error {
	for _, name := range []string{artifactsFileName, artifactsXFileName} {
		if err := fsutil.DeleteIfExists(filepath.Join(slotPath, name)); err != nil {
			return err
		}
	}
	return nil
}

// ReplaceWithDir replaces the slot's contents wholesale with the contents of
// srcDir. The copy lands in a staging sibling first and is renamed into
// place, so a crash mid-copy cannot leave a half-overwritten slot.
func ReplaceWithDir(slotPath, srcDir string) error {
	if !fsutil.IsDir(srcDir) {
		return errors.Wrapf(errors.ErrPackageCopyFailed, "source directory %s does not exist", srcDir)
	}

	staging := slotPath + stagingSuffix
	stage := func() error { return fsutil.CopyDir(srcDir, staging) }
	return swapIntoPlace(slotPath, staging, stage)
}

// ReplaceWithArchive replaces the slot's contents with the extracted
// contents of a local archive, staged the same way as a directory copy.
func ReplaceWithArchive(ctx context.Context, slotPath, archivePath string) error {
	if !fsutil.Exists(archivePath) {
		return errors.Wrapf(errors.ErrPackageCopyFailed, "archive %s does not exist", archivePath)
	}

	staging := slotPath + stagingSuffix
	stage := func() error { return archive.NewManager().ExtractAll(ctx, archivePath, staging) }
	return swapIntoPlace(slotPath, staging, stage)
}

func swapIntoPlace(slotPath, staging string, stage func() error) error {
	if err := fsutil.EnsureDir(filepath.Dir(slotPath)); err != nil {
		return errors.Wrap(errors.ErrPackageCopyFailed, err.Error())
	}
	if err := os.RemoveAll(staging); err != nil {
		return errors.Wrap(errors.ErrPackageCopyFailed, err.Error())
	}

	if err := stage(); err != nil {
		_ = os.RemoveAll(staging)
		return errors.Wrap(errors.ErrPackageCopyFailed, err.Error())
	}
	if err := fsutil.Touch(filepath.Join(staging, MarkerFileName)); err != nil {
		_ = os.RemoveAll(staging)
		return errors.Wrap(errors.ErrPackageCopyFailed, err.Error())
	}

	if err := DeleteArtifactCaches(slotPath); err != nil {
		_ = os.RemoveAll(staging)
		return err
	}
	if err := os.RemoveAll(slotPath); err != nil {
		_ = os.RemoveAll(staging)
		return errors.Wrap(errors.ErrPackageCopyFailed, err.Error())
	}
	if err := os.Rename(staging, slotPath); err != nil {
		_ = os.RemoveAll(staging)
		return errors.Wrap(errors.ErrPackageCopyFailed, err.Error())
	}
	return nil
}

// RemoveSlot deletes the slot wholesale so the host package manager will
// re-fetch the original. An absent slot is a no-op, not an error.
func RemoveSlot(slotPath string) error {
	if err := os.RemoveAll(slotPath); err != nil {
		return errors.Wrap(errors.ErrUnloadFailed, err.Error())
	}
	return nil
}

// IsSideloaded reports whether the slot carries the override marker.
func IsSideloaded(slotPath string) bool {
	return fsutil.Exists(filepath.Join(slotPath, MarkerFileName))
}

// BustBuildCache removes the project-level compiler build cache. Leaving it
// intact risks the compiler reusing object code built against the
// pre-override sources.
func BustBuildCache(projectDir, compilerVersion string) error {
	return os.RemoveAll(filepath.Join(projectDir, buildCacheDirName, compilerVersion))
}
