package worktree

import "fmt"

// Pull fast-forwards an existing worktree to the latest remote state.
func (w *realWorktree) Pull(worktreePath string) error {
	w.logger.Logf("Pulling latest changes into %s", worktreePath)
	if err := w.git.Pull(worktreePath); err != nil {
		return fmt.Errorf("failed to pull worktree: %w", err)
	}
	return nil
}
