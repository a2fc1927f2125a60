package git

import "fmt"

// CheckoutNewBranch creates and checks out a new branch from the current one.
func (g *realGit) CheckoutNewBranch(repoPath, branch string) error {
	if _, err := g.run(repoPath, 0, "checkout", "-b", branch); err != nil {
		return fmt.Errorf("git checkout -b failed: %w", err)
	}
	return nil
}
