package status

import "fmt"

// AddWorktree records a worktree under its main repository.
func (s *realManager) AddWorktree(params AddWorktreeParams) error {
	// Load current status
	status, err := s.loadStatus()
	if err != nil {
		return fmt.Errorf("failed to load status: %w", err)
	}

	// Ensure repository exists
	repo, ok := status.Repositories[params.RepoPath]
	if !ok {
		return fmt.Errorf("%w: %s", ErrRepositoryNotFound, params.RepoPath)
	}

	// Check for duplicate worktree entry
	if _, exists := repo.Worktrees[params.Branch]; exists {
		return fmt.Errorf("%w for repository %s branch %s",
			ErrWorktreeAlreadyExists, params.RepoPath, params.Branch)
	}

	// Add to repository's worktrees
	if repo.Worktrees == nil {
		repo.Worktrees = make(map[string]WorktreeInfo)
	}
	repo.Worktrees[params.Branch] = WorktreeInfo{
		Branch: params.Branch,
		Path:   params.WorktreePath,
	}
	status.Repositories[params.RepoPath] = repo

	// Save updated status
	if err := s.saveStatus(status); err != nil {
		return fmt.Errorf("failed to save status: %w", err)
	}

	return nil
}
