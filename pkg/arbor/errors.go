package arbor

import "errors"

// Validation errors raised before any git subprocess runs.
var (
	ErrNilConfig         = errors.New("configuration is required")
	ErrEmptyBranch       = errors.New("branch name cannot be empty")
	ErrEmptyRepoPath     = errors.New("repository path cannot be empty")
	ErrEmptyWorktreePath = errors.New("worktree path cannot be empty")
	ErrEmptyTargetPath   = errors.New("target path cannot be empty")
)
