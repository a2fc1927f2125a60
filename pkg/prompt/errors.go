package prompt

import "errors"

// Error definitions for the prompt package.
var (
	ErrInvalidConfirmationInput = errors.New("invalid input: please enter 'y' or 'n'")
	ErrNoChoices                = errors.New("no worktrees available to select from")
	ErrNoSelection              = errors.New("no selection made")
)
