package arbor

import (
	"fmt"

	"github.com/arbordev/arbor/pkg/status"
)

// ListWorktrees returns the registry snapshot for one main repository.
func (a *realArbor) ListWorktrees(repoPath string) ([]status.WorktreeInfo, error) {
	if repoPath == "" {
		return nil, ErrEmptyRepoPath
	}

	worktrees, err := a.statusManager.ListWorktrees(repoPath)
	if err != nil {
		return nil, fmt.Errorf("failed to list worktrees: %w", err)
	}
	return worktrees, nil
}

// ListRepositories returns all tracked main repositories.
func (a *realArbor) ListRepositories() ([]status.RepositoryEntry, error) {
	repositories, err := a.statusManager.ListRepositories()
	if err != nil {
		return nil, fmt.Errorf("failed to list repositories: %w", err)
	}
	return repositories, nil
}
