package git

// BranchExistsOnRemote checks whether a branch exists on the remote. The
// match is exact: branch names nest with "/", so "feature" must not match
// "feature/sub" and vice versa. A failed query reports false rather than an
// error; an unreachable remote should not block the caller differently than
// "branch not found" at this layer, and the caller's subsequent operations
// surface connectivity errors more specifically.
func (g *realGit) BranchExistsOnRemote(repoPath, branch string) bool {
	branches, err := g.ListRemoteBranches(repoPath)
	if err != nil {
		return false
	}

	for _, existing := range branches {
		if existing == branch {
			return true
		}
	}
	return false
}
