// Package status tracks provisioned repositories and worktrees in a YAML
// registry file.
package status

import "errors"

// Error definitions for status package.
var (
	// Worktree management errors.
	ErrWorktreeAlreadyExists = errors.New("worktree already exists")
	ErrWorktreeNotFound      = errors.New("worktree not found")

	// Repository management errors.
	ErrRepositoryNotFound = errors.New("repository not found in status")

	// Status file errors.
	ErrStatusFileParse         = errors.New("failed to parse status file")
	ErrStatusFileNotConfigured = errors.New("status file path is not configured")
)
