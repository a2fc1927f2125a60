package status

import "fmt"

// GetWorktree retrieves a tracked worktree by branch.
func (s *realManager) GetWorktree(repoPath, branch string) (WorktreeInfo, error) {
	// Load current status
	status, err := s.loadStatus()
	if err != nil {
		return WorktreeInfo{}, fmt.Errorf("failed to load status: %w", err)
	}

	repo, ok := status.Repositories[repoPath]
	if !ok {
		return WorktreeInfo{}, fmt.Errorf("%w: %s", ErrRepositoryNotFound, repoPath)
	}

	info, ok := repo.Worktrees[branch]
	if !ok {
		return WorktreeInfo{}, fmt.Errorf("%w for repository %s branch %s",
			ErrWorktreeNotFound, repoPath, branch)
	}

	return info, nil
}
