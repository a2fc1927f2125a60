package git

import "fmt"

// FetchRemote fetches all remote state from origin.
func (g *realGit) FetchRemote(repoPath string) error {
	if _, err := g.run(repoPath, NetworkTimeout, "fetch", "origin"); err != nil {
		return fmt.Errorf("git fetch failed: %w", err)
	}
	return nil
}
