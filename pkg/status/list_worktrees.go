package status

import "fmt"

// ListWorktrees lists the worktrees of a repository sorted by branch.
func (s *realManager) ListWorktrees(repoPath string) ([]WorktreeInfo, error) {
	// Load current status
	status, err := s.loadStatus()
	if err != nil {
		return nil, fmt.Errorf("failed to load status: %w", err)
	}

	repo, ok := status.Repositories[repoPath]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRepositoryNotFound, repoPath)
	}

	return sortedWorktrees(repo), nil
}
