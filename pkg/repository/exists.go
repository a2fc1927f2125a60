package repository

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Exists checks whether the path already contains a Git repository. A
// repository carries either a .git directory (main clone) or a .git file
// whose content starts with "gitdir:" (linked worktree).
func (r *realRepository) Exists(repoPath string) (bool, error) {
	gitPath := filepath.Join(repoPath, ".git")

	exists, err := r.fs.Exists(gitPath)
	if err != nil {
		return false, fmt.Errorf("failed to check repository metadata: %w", err)
	}
	if !exists {
		return false, nil
	}

	isDir, err := r.fs.IsDir(gitPath)
	if err != nil {
		return false, fmt.Errorf("failed to check repository metadata: %w", err)
	}
	if isDir {
		return true, nil
	}

	content, err := r.fs.ReadFile(gitPath)
	if err != nil {
		return false, fmt.Errorf("failed to read repository metadata file: %w", err)
	}
	return strings.HasPrefix(strings.TrimSpace(string(content)), "gitdir:"), nil
}
