package git

import "fmt"

// PushUpstream pushes a branch to origin with upstream tracking established,
// executed from within the given directory.
func (g *realGit) PushUpstream(worktreePath, branch string) error {
	if _, err := g.run(worktreePath, NetworkTimeout, "push", "--set-upstream", "origin", branch); err != nil {
		return fmt.Errorf("git push failed: %w", err)
	}
	return nil
}
