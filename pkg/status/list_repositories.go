package status

import (
	"fmt"
	"sort"
)

// ListRepositories lists all tracked repositories sorted by path.
func (s *realManager) ListRepositories() ([]RepositoryEntry, error) {
	// Load current status
	status, err := s.loadStatus()
	if err != nil {
		return nil, fmt.Errorf("failed to load status: %w", err)
	}

	entries := make([]RepositoryEntry, 0, len(status.Repositories))
	for path, repo := range status.Repositories {
		entries = append(entries, RepositoryEntry{Path: path, Repository: repo})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Path < entries[j].Path
	})

	return entries, nil
}
