package config

import "errors"

// Error definitions for config package.
var (
	// Configuration file errors.
	ErrConfigFileParse = errors.New("failed to parse config file")
	// Configuration initialization errors.
	ErrConfigNotInitialized = errors.New("arbor configuration not found. Run 'arbor init' to initialize")
	// Configuration validation errors.
	ErrRepositoriesDirEmpty = errors.New("repositories_dir cannot be empty")
	ErrWorktreesDirEmpty    = errors.New("worktrees_dir cannot be empty")
	ErrStatusFileEmpty      = errors.New("status_file cannot be empty")
	ErrInvalidCloneTimeout  = errors.New("clone_timeout_minutes cannot be negative")
)
