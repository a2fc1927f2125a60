package git

import "fmt"

// DeleteBranch force-deletes a local branch.
func (g *realGit) DeleteBranch(repoPath, branch string) error {
	if _, err := g.run(repoPath, 0, "branch", "-D", branch); err != nil {
		return fmt.Errorf("git branch delete failed: %w", err)
	}
	return nil
}
