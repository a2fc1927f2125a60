package arbor

import (
	"fmt"

	"github.com/arbordev/arbor/pkg/arbor/consts"
)

// PullWorktree fast-forwards an existing worktree to the latest remote state.
func (a *realArbor) PullWorktree(worktreePath string) OperationResult {
	opID := newOperationID()

	return a.execute(consts.PullWorktree, opID, func() (string, error) {
		if worktreePath == "" {
			return "", ErrEmptyWorktreePath
		}

		if err := a.worktree.Pull(worktreePath); err != nil {
			return "", err
		}
		return fmt.Sprintf("Pulled latest changes into %s", worktreePath), nil
	})
}
