package status

import "fmt"

// GetRepository retrieves a repository entry by its checkout path.
func (s *realManager) GetRepository(repoPath string) (Repository, error) {
	// Load current status
	status, err := s.loadStatus()
	if err != nil {
		return Repository{}, fmt.Errorf("failed to load status: %w", err)
	}

	repo, ok := status.Repositories[repoPath]
	if !ok {
		return Repository{}, fmt.Errorf("%w: %s", ErrRepositoryNotFound, repoPath)
	}

	return repo, nil
}
