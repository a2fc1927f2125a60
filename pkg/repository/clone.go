package repository

import (
	"fmt"
	"path/filepath"

	"github.com/arbordev/arbor/pkg/git"
)

// Clone clones a remote into a target path. Without a branch this is a plain
// clone of the remote's default branch. With a branch it clones directly onto
// that branch; when git reports the branch missing on the remote, the default
// branch is cloned instead and the requested branch is created locally and
// pushed upstream with tracking established. A failed clone directory is left
// in place for the caller to inspect or remove.
func (r *realRepository) Clone(params CloneParams) error {
	if err := r.fs.MkdirAll(filepath.Dir(params.TargetPath), 0o755); err != nil {
		return fmt.Errorf("failed to create clone parent directory: %w", err)
	}

	r.logger.Logf("Cloning %s to %s", params.URL, params.TargetPath)
	err := r.git.Clone(git.CloneParams{
		URL:        params.URL,
		TargetPath: params.TargetPath,
		Branch:     params.Branch,
		Timeout:    r.cloneTimeout,
		OnProgress: r.logProgress,
	})
	if err == nil {
		return nil
	}

	if params.Branch == "" || !git.IsRemoteBranchMissing(err) {
		return fmt.Errorf("%w: %w", ErrCloneFailed, err)
	}

	// The requested branch does not exist remotely: clone the default
	// branch, then create and publish the branch from there.
	r.logger.Logf("Branch %s not found on remote, cloning default branch and creating it", params.Branch)
	if err := r.git.Clone(git.CloneParams{
		URL:        params.URL,
		TargetPath: params.TargetPath,
		Timeout:    r.cloneTimeout,
		OnProgress: r.logProgress,
	}); err != nil {
		return fmt.Errorf("%w: %w", ErrCloneFailed, err)
	}

	if err := r.git.CheckoutNewBranch(params.TargetPath, params.Branch); err != nil {
		return fmt.Errorf("failed to create branch %s: %w", params.Branch, err)
	}

	if err := r.git.PushUpstream(params.TargetPath, params.Branch); err != nil {
		return fmt.Errorf("failed to push branch %s upstream: %w", params.Branch, err)
	}

	r.logger.Logf("Created and pushed new branch %s", params.Branch)
	return nil
}
