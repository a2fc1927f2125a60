package git

import "errors"

// Git-specific error types.
var (
	// ErrFilteringContent indicates a long worktree or clone operation
	// failed while git was filtering large file content, usually a timeout
	// on repositories with binary-asset filters.
	ErrFilteringContent = errors.New("git was filtering large file content when the operation failed; " +
		"consider increasing the clone timeout or disabling content filtering")
)
