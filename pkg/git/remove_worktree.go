package git

import "fmt"

// RemoveWorktree removes a worktree from Git's tracking. The removal is
// forced: local modifications in the worktree must not block teardown.
func (g *realGit) RemoveWorktree(repoPath, worktreePath string) error {
	if _, err := g.run(repoPath, 0, "worktree", "remove", "--force", worktreePath); err != nil {
		return fmt.Errorf("git worktree remove failed: %w", err)
	}
	return nil
}
