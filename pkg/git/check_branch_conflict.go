package git

import "strings"

// CheckBranchConflict reports the existing remote branch whose name collides
// with candidate in the reference namespace, or "" when there is none.
// Branch names form a hierarchical path-like namespace, so "a" and "a/b"
// cannot coexist; the check is bidirectional because either side may be the
// nested one. A failed remote query reports no conflict: the collision then
// surfaces later as git's own clearer error instead of blocking on an
// inconclusive pre-flight check.
func (g *realGit) CheckBranchConflict(repoPath, candidate string) string {
	branches, err := g.ListRemoteBranches(repoPath)
	if err != nil {
		return ""
	}

	for _, existing := range branches {
		if strings.HasPrefix(existing, candidate+"/") {
			return existing
		}
		if strings.HasPrefix(candidate, existing+"/") {
			return existing
		}
	}
	return ""
}
