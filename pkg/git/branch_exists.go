package git

// BranchExists checks whether a branch exists locally.
func (g *realGit) BranchExists(repoPath, branch string) bool {
	_, err := g.run(repoPath, 0, "show-ref", "--verify", "--quiet", "refs/heads/"+branch)
	return err == nil
}
