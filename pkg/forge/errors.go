package forge

import "errors"

// Provider errors
var (
	ErrUnsupportedForge = errors.New("unsupported hosting provider")
	ErrInvalidRemoteURL = errors.New("URL does not reference a repository on this provider")
)
