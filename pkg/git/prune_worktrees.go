package git

import "fmt"

// PruneWorktrees prunes stale worktree metadata in the main repository.
func (g *realGit) PruneWorktrees(repoPath string) error {
	if _, err := g.run(repoPath, 0, "worktree", "prune"); err != nil {
		return fmt.Errorf("git worktree prune failed: %w", err)
	}
	return nil
}
