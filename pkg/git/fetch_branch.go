package git

import "fmt"

// FetchBranch force-updates the remote-tracking reference of one branch. The
// leading "+" makes the update non-fast-forward safe, so the tracking ref
// points at the remote's current tip even when a concurrent fetch moved it.
func (g *realGit) FetchBranch(repoPath, branch string) error {
	refspec := fmt.Sprintf("+refs/heads/%s:refs/remotes/origin/%s", branch, branch)
	if _, err := g.run(repoPath, NetworkTimeout, "fetch", "origin", refspec); err != nil {
		return fmt.Errorf("git fetch of branch %s failed: %w", branch, err)
	}
	return nil
}
