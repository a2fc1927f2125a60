package status

import "fmt"

// RemoveRepository removes a repository entry and all its worktrees.
func (s *realManager) RemoveRepository(repoPath string) error {
	// Load current status
	status, err := s.loadStatus()
	if err != nil {
		return fmt.Errorf("failed to load status: %w", err)
	}

	if _, ok := status.Repositories[repoPath]; !ok {
		return fmt.Errorf("%w: %s", ErrRepositoryNotFound, repoPath)
	}

	delete(status.Repositories, repoPath)

	// Save updated status
	if err := s.saveStatus(status); err != nil {
		return fmt.Errorf("failed to save status: %w", err)
	}

	return nil
}
