package fsutil

// File and directory permission constants.
// These follow standard Unix permission conventions and are used consistently
// throughout the application.
const (
	// FileModeDefault is the default mode for regular files (-rw-r--r--).
	FileModeDefault = 0o644

	// DirModeDefault is the default mode for directories (drwxr-xr-x).
	DirModeDefault = 0o755
)
