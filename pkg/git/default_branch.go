package git

// Branch names probed, in order, when neither symbolic-ref resolution tier
// yields an answer.
var commonDefaultBranches = []string{"main", "master", "develop"}

// DefaultBranch resolves the branch the remote considers primary using a
// three-tier fallback strategy:
//
//  1. the local symbolic reference mirroring the remote HEAD (fast, offline);
//  2. the remote's own symbolic HEAD via ls-remote (authoritative);
//  3. the first of the common names that exists on the remote.
//
// When all tiers fail it returns "main". Remotes do not expose their default
// branch identically across hosting providers and clone states, so a little
// extra latency buys robustness here.
func (g *realGit) DefaultBranch(repoPath string) string {
	if output, err := g.run(repoPath, 0, "symbolic-ref", "refs/remotes/origin/HEAD"); err == nil {
		if branch := parseOriginSymref(output); branch != "" {
			return branch
		}
	}

	if output, err := g.run(repoPath, NetworkTimeout, "ls-remote", "--symref", "origin", "HEAD"); err == nil {
		if branch := parseLsRemoteSymref(output); branch != "" {
			return branch
		}
	}

	if branches, err := g.ListRemoteBranches(repoPath); err == nil {
		for _, candidate := range commonDefaultBranches {
			for _, branch := range branches {
				if branch == candidate {
					return candidate
				}
			}
		}
	}

	return "main"
}
