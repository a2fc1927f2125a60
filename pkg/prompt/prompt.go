// Package prompt provides interactive CLI prompts for arbor.
package prompt

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

//go:generate mockgen -source=prompt.go -destination=mocks/prompt.gen.go -package=mocks

// WorktreeChoice represents a selectable worktree.
type WorktreeChoice struct {
	Repository string // main repository path
	Branch     string
	Path       string // worktree path
}

// Prompter interface provides user interaction functionality.
type Prompter interface {
	// Confirm prompts the user for a yes/no answer with a default value.
	Confirm(message string, defaultYes bool) (bool, error)

	// SelectWorktree prompts the user to pick a worktree from a list.
	SelectWorktree(choices []WorktreeChoice) (WorktreeChoice, error)
}

type realPrompt struct {
	reader *bufio.Reader
}

// NewPrompt creates a new Prompter reading from stdin.
func NewPrompt() Prompter {
	return &realPrompt{
		reader: bufio.NewReader(os.Stdin),
	}
}

// Confirm prompts the user for a yes/no answer with a default value.
func (p *realPrompt) Confirm(message string, defaultYes bool) (bool, error) {
	var defaultText string
	if defaultYes {
		defaultText = "[Y/n]"
	} else {
		defaultText = "[y/N]"
	}

	fmt.Printf("%s %s: ", message, defaultText)

	input, err := p.reader.ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("failed to read user input: %w", err)
	}

	input = strings.TrimSpace(strings.ToLower(input))

	if input == "" {
		return defaultYes, nil
	}

	switch input {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, ErrInvalidConfirmationInput
	}
}

// SelectWorktree prompts the user to pick a worktree from a list.
func (p *realPrompt) SelectWorktree(choices []WorktreeChoice) (WorktreeChoice, error) {
	if len(choices) == 0 {
		return WorktreeChoice{}, ErrNoChoices
	}

	return selectWorktreeBubbleTea(choices)
}
