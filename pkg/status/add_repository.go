package status

import "fmt"

// AddRepository records a main repository in the status file. Recording an
// already-tracked repository is a no-op, so callers can invoke it on every
// provisioning run.
func (s *realManager) AddRepository(repoPath, url string) error {
	// Load current status
	status, err := s.loadStatus()
	if err != nil {
		return fmt.Errorf("failed to load status: %w", err)
	}

	if existing, ok := status.Repositories[repoPath]; ok {
		// Backfill the URL if an earlier entry was recorded without one
		if existing.URL != "" || url == "" {
			return nil
		}
		existing.URL = url
		status.Repositories[repoPath] = existing
	} else {
		status.Repositories[repoPath] = Repository{
			URL:       url,
			Worktrees: make(map[string]WorktreeInfo),
		}
	}

	// Save updated status
	if err := s.saveStatus(status); err != nil {
		return fmt.Errorf("failed to save status: %w", err)
	}

	return nil
}
