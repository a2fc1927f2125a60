package arbor

import (
	"fmt"

	"github.com/arbordev/arbor/pkg/arbor/consts"
	"github.com/arbordev/arbor/pkg/repourl"
	"github.com/arbordev/arbor/pkg/worktree"
)

// CreateWorktree provisions a branch-scoped worktree, cloning the main
// repository first when needed.
func (a *realArbor) CreateWorktree(params CreateWorktreeParams) OperationResult {
	opID := newOperationID()

	return a.execute(consts.CreateWorktree, opID, func() (string, error) {
		if err := validateCreateWorktreeParams(params); err != nil {
			return "", err
		}

		a.logger.Logf("[%s] provisioning worktree for %s on branch %s",
			opID, params.RepoURL, params.Branch)

		return a.worktree.Create(worktree.CreateParams{
			RepoURL:      params.RepoURL,
			RepoPath:     params.RepoPath,
			WorktreePath: params.WorktreePath,
			Branch:       params.Branch,
		})
	})
}

func validateCreateWorktreeParams(params CreateWorktreeParams) error {
	if !repourl.IsValid(params.RepoURL) {
		return fmt.Errorf("%w: %s", repourl.ErrInvalidRepositoryURL, params.RepoURL)
	}
	if params.Branch == "" {
		return ErrEmptyBranch
	}
	if params.RepoPath == "" {
		return ErrEmptyRepoPath
	}
	if params.WorktreePath == "" {
		return ErrEmptyWorktreePath
	}
	return nil
}
