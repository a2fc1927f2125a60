package git

import "time"

// CloneParams contains parameters for Clone.
type CloneParams struct {
	URL        string
	TargetPath string
	Branch     string        // empty means the remote's default branch
	Timeout    time.Duration // zero means executor.DefaultTimeout
	OnProgress func(line string)
}

// AddWorktreeParams contains parameters for AddWorktree.
type AddWorktreeParams struct {
	RepoPath     string
	WorktreePath string
	Branch       string
	StartPoint   string        // reference the new branch forks from, e.g. "origin/main"
	Timeout      time.Duration // zero means executor.DefaultTimeout
	OnProgress   func(line string)
}
