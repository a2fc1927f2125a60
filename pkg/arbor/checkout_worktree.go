package arbor

import (
	"fmt"

	"github.com/arbordev/arbor/pkg/arbor/consts"
)

// CheckoutWorktree checks out a branch inside an existing worktree.
func (a *realArbor) CheckoutWorktree(worktreePath, branch string) OperationResult {
	opID := newOperationID()

	return a.execute(consts.CheckoutWorktree, opID, func() (string, error) {
		if worktreePath == "" {
			return "", ErrEmptyWorktreePath
		}
		if branch == "" {
			return "", ErrEmptyBranch
		}

		if err := a.worktree.Checkout(worktreePath, branch); err != nil {
			return "", err
		}
		return fmt.Sprintf("Checked out %s in %s", branch, worktreePath), nil
	})
}
