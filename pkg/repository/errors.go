package repository

import "errors"

// Error definitions for repository package.
var (
	ErrCloneFailed = errors.New("failed to clone repository")
	ErrFetchFailed = errors.New("failed to fetch remote state")
)
