package repourl

import "errors"

// URL validation error types.
var (
	// ErrInvalidRepositoryURL indicates the string is not a usable repository URL.
	ErrInvalidRepositoryURL = errors.New("invalid repository URL")
)
