package repository

import (
	"fmt"
	"path/filepath"

	"github.com/arbordev/arbor/pkg/git"
)

// EnsureExists makes sure the main repository exists: when the path already
// holds a repository all remote state is fetched into it, otherwise the
// remote is cloned there. Both paths are idempotent, so callers repeat this
// step on every provisioning run.
func (r *realRepository) EnsureExists(params EnsureExistsParams) error {
	exists, err := r.Exists(params.RepoPath)
	if err != nil {
		return err
	}

	if exists {
		r.logger.Logf("Main repository present at %s, fetching remote state", params.RepoPath)
		if err := r.git.FetchRemote(params.RepoPath); err != nil {
			return fmt.Errorf("%w: %w", ErrFetchFailed, err)
		}
		return nil
	}

	r.logger.Logf("Main repository absent, cloning %s to %s", params.URL, params.RepoPath)
	if err := r.fs.MkdirAll(filepath.Dir(params.RepoPath), 0o755); err != nil {
		return fmt.Errorf("failed to create repository parent directory: %w", err)
	}

	if err := r.git.Clone(git.CloneParams{
		URL:        params.URL,
		TargetPath: params.RepoPath,
		Timeout:    r.cloneTimeout,
		OnProgress: r.logProgress,
	}); err != nil {
		return fmt.Errorf("%w: %w", ErrCloneFailed, err)
	}

	return nil
}
