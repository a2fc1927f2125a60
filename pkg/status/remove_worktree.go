package status

import "fmt"

// RemoveWorktree removes a tracked worktree by branch.
func (s *realManager) RemoveWorktree(repoPath, branch string) error {
	// Load current status
	status, err := s.loadStatus()
	if err != nil {
		return fmt.Errorf("failed to load status: %w", err)
	}

	repo, ok := status.Repositories[repoPath]
	if !ok {
		return fmt.Errorf("%w: %s", ErrRepositoryNotFound, repoPath)
	}

	if _, exists := repo.Worktrees[branch]; !exists {
		return fmt.Errorf("%w for repository %s branch %s",
			ErrWorktreeNotFound, repoPath, branch)
	}

	delete(repo.Worktrees, branch)
	status.Repositories[repoPath] = repo

	// Save updated status
	if err := s.saveStatus(status); err != nil {
		return fmt.Errorf("failed to save status: %w", err)
	}

	return nil
}
