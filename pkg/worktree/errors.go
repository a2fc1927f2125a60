package worktree

import "errors"

// Error definitions for worktree package.
var (
	// ErrBranchNameConflict indicates the requested branch name collides
	// with an existing branch in the reference namespace (a branch "a" and
	// a branch "a/b" cannot coexist).
	ErrBranchNameConflict = errors.New("branch name conflicts with an existing branch")

	// ErrDirectoryDeletionFailed indicates the worktree directory could not
	// be deleted during removal.
	ErrDirectoryDeletionFailed = errors.New("failed to delete worktree directory")
)
