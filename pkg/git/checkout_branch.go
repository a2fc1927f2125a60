package git

import "fmt"

// CheckoutBranch checks out an existing branch in the given worktree.
func (g *realGit) CheckoutBranch(worktreePath, branch string) error {
	if _, err := g.run(worktreePath, 0, "checkout", branch); err != nil {
		return fmt.Errorf("git checkout failed: %w", err)
	}
	return nil
}
