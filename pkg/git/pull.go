package git

import "fmt"

// Pull fast-forwards the current branch of the given worktree. Diverged
// histories are surfaced as errors rather than silently merged.
func (g *realGit) Pull(worktreePath string) error {
	if _, err := g.run(worktreePath, NetworkTimeout, "pull", "--ff-only"); err != nil {
		return fmt.Errorf("git pull failed: %w", err)
	}
	return nil
}
