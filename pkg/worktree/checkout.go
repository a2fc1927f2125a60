package worktree

import "fmt"

// Checkout checks out a branch inside an existing worktree.
func (w *realWorktree) Checkout(worktreePath, branch string) error {
	w.logger.Logf("Checking out branch %s in %s", branch, worktreePath)
	if err := w.git.CheckoutBranch(worktreePath, branch); err != nil {
		return fmt.Errorf("failed to checkout branch %s: %w", branch, err)
	}
	return nil
}
