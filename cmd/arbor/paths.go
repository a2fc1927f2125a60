package main

import (
	"path/filepath"

	"github.com/arbordev/arbor/pkg/config"
	"github.com/arbordev/arbor/pkg/repourl"
)

// repoPathFor derives the main repository checkout path for a remote URL:
// <repositories_dir>/<host>/<owner>/<repo>.
func repoPathFor(cfg *config.Config, repoURL string) (string, error) {
	identity, err := repourl.Normalize(repoURL)
	if err != nil {
		return "", err
	}
	return filepath.Join(cfg.RepositoriesDir, filepath.FromSlash(identity)), nil
}

// worktreePathFor derives the worktree path for a remote URL and branch:
// <worktrees_dir>/<host>/<owner>/<repo>/<branch>.
func worktreePathFor(cfg *config.Config, repoURL, branch string) (string, error) {
	identity, err := repourl.Normalize(repoURL)
	if err != nil {
		return "", err
	}
	return filepath.Join(cfg.WorktreesDir, filepath.FromSlash(identity), filepath.FromSlash(branch)), nil
}
