package executor

import "errors"

// Executor-specific error types.
var (
	// ErrTimeout indicates the command exceeded its allotted execution time
	// and was killed.
	ErrTimeout = errors.New("command timed out")
)
