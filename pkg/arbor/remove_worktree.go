package arbor

import (
	"github.com/arbordev/arbor/pkg/arbor/consts"
	"github.com/arbordev/arbor/pkg/worktree"
)

// RemoveWorktree tears a worktree down best-effort; only a failure to delete
// the directory fails the operation.
func (a *realArbor) RemoveWorktree(params RemoveWorktreeParams) OperationResult {
	opID := newOperationID()

	return a.execute(consts.RemoveWorktree, opID, func() (string, error) {
		if params.RepoPath == "" {
			return "", ErrEmptyRepoPath
		}
		if params.WorktreePath == "" {
			return "", ErrEmptyWorktreePath
		}

		a.logger.Logf("[%s] removing worktree %s", opID, params.WorktreePath)

		return a.worktree.Remove(worktree.RemoveParams{
			RepoPath:     params.RepoPath,
			WorktreePath: params.WorktreePath,
			Branch:       params.Branch,
		})
	})
}
