package cli

// Default values for CLI flags and file names.
const (
	// GitIgnoreFileName is the ignore file init appends the cache entry to.
	GitIgnoreFileName = ".gitignore"
	// LocalCacheIgnoreEntry keeps a project-local repo cache out of version control.
	LocalCacheIgnoreEntry = ".elm-sideload-cache/"
)
