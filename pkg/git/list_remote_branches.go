package git

import "fmt"

// ListRemoteBranches lists the branch heads on the remote. This is a
// read-only query; it does not mutate any local state.
func (g *realGit) ListRemoteBranches(repoPath string) ([]string, error) {
	output, err := g.run(repoPath, NetworkTimeout, "ls-remote", "--heads", "origin")
	if err != nil {
		return nil, fmt.Errorf("failed to list remote branches: %w", err)
	}
	return parseRemoteHeads(output), nil
}
