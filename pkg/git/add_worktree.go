package git

import (
	"fmt"

	"github.com/arbordev/arbor/pkg/executor"
)

// AddWorktree creates a worktree at params.WorktreePath on a new local branch
// forked from params.StartPoint:
//
//	git worktree add -b <branch> <path> <start-point>
//
// Output is streamed to OnProgress; large repositories with binary-asset
// filtering can run for minutes. When the failure text carries git's
// "Filtering content" marker the error wraps ErrFilteringContent so callers
// can give targeted guidance instead of a generic failure.
func (g *realGit) AddWorktree(params AddWorktreeParams) error {
	args := []string{"worktree", "add", "-b", params.Branch, params.WorktreePath, params.StartPoint}

	_, err := g.exec.RunStreaming(executor.RunParams{
		Command: "git",
		Args:    args,
		Dir:     params.RepoPath,
		Timeout: params.Timeout,
	}, params.OnProgress)
	if err != nil {
		if IsFilteringContent(err) {
			return fmt.Errorf("%w: %w", ErrFilteringContent, err)
		}
		return fmt.Errorf("git worktree add failed: %w", err)
	}
	return nil
}
