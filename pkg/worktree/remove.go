package worktree

import (
	"errors"
	"fmt"

	"github.com/arbordev/arbor/pkg/status"
)

// Remove tears a worktree down. Every step is best-effort and independently
// logged: detaching from Git tracking alone does not delete files, so the
// directory is always deleted afterward, stale metadata is pruned, and the
// local branch is force-deleted when one was named. Only a directory that
// refuses to go away fails the operation; anything else degrades to a caveat
// in the returned message, because the user-visible goal is that the worktree
// is gone.
func (w *realWorktree) Remove(params RemoveParams) (string, error) {
	w.logger.Logf("Removing worktree at %s", params.WorktreePath)

	detachErr := w.git.RemoveWorktree(params.RepoPath, params.WorktreePath)
	if detachErr != nil {
		w.logger.Logf("Failed to detach worktree from Git, falling back to direct directory deletion: %v", detachErr)
	}

	if err := w.fs.RemoveAll(params.WorktreePath); err != nil {
		return "", fmt.Errorf("%w: %w", ErrDirectoryDeletionFailed, err)
	}

	if err := w.git.PruneWorktrees(params.RepoPath); err != nil {
		w.logger.Logf("Warning: failed to prune worktree metadata: %v", err)
	}

	if params.Branch != "" {
		w.deleteLocalBranch(params.RepoPath, params.Branch)
	}

	w.removeFromStatus(params)

	if detachErr != nil {
		return fmt.Sprintf("Removed worktree directory %s (Git tracking was already inconsistent and was pruned)",
			params.WorktreePath), nil
	}
	return fmt.Sprintf("Removed worktree at %s", params.WorktreePath), nil
}

// deleteLocalBranch force-deletes the local branch left behind by the
// worktree. The worktree itself is already gone at this point, so a failure
// is logged rather than propagated.
func (w *realWorktree) deleteLocalBranch(repoPath, branch string) {
	if !w.git.BranchExists(repoPath, branch) {
		return
	}
	if err := w.git.DeleteBranch(repoPath, branch); err != nil {
		w.logger.Logf("Warning: failed to delete local branch %s: %v", branch, err)
		return
	}
	w.logger.Logf("Deleted local branch %s", branch)
}

// removeFromStatus drops the worktree from the registry, best-effort.
func (w *realWorktree) removeFromStatus(params RemoveParams) {
	branch := params.Branch
	if branch == "" {
		// Without a branch the registry entry has to be found by path.
		worktrees, err := w.statusManager.ListWorktrees(params.RepoPath)
		if err != nil {
			if !errors.Is(err, status.ErrRepositoryNotFound) {
				w.logger.Logf("Warning: failed to list worktrees in status: %v", err)
			}
			return
		}
		for _, info := range worktrees {
			if info.Path == params.WorktreePath {
				branch = info.Branch
				break
			}
		}
		if branch == "" {
			return
		}
	}

	if err := w.statusManager.RemoveWorktree(params.RepoPath, branch); err != nil &&
		!errors.Is(err, status.ErrWorktreeNotFound) && !errors.Is(err, status.ErrRepositoryNotFound) {
		w.logger.Logf("Warning: failed to remove worktree from status: %v", err)
	}
}
