package worktree

import (
	"fmt"
	"path/filepath"

	"github.com/arbordev/arbor/pkg/git"
	"github.com/arbordev/arbor/pkg/repository"
	"github.com/arbordev/arbor/pkg/status"
)

// Create provisions a worktree bound to params.Branch. The steps run
// strictly in order and each failure short-circuits the remainder:
//
//  1. ensure the main repository exists (clone or fetch, idempotent);
//  2. explicitly re-fetch origin, closing the window where the remote moved
//     between step 1 and worktree creation;
//  3. resolve the default branch;
//  4. force-update the default branch's remote-tracking ref so step 6 forks
//     from the true latest commit even under concurrent fetches;
//  5. determine target-branch existence on the remote; a branch that does
//     not exist yet is pre-flight checked for reference-namespace
//     collisions, the only validation that rejects the whole operation
//     before any mutating worktree command runs;
//  6. create the worktree on a new local branch, started from the remote
//     branch of the same name when it exists, from the default branch
//     otherwise;
//  7. push a freshly forked branch upstream with tracking established.
//
// There is no locking across invocations: concurrent creation against the
// same main repository is the caller's responsibility to serialize.
func (w *realWorktree) Create(params CreateParams) (string, error) {
	w.logger.Logf("Creating worktree for branch %s at %s", params.Branch, params.WorktreePath)

	if err := w.repository.EnsureExists(repository.EnsureExistsParams{
		URL:      params.RepoURL,
		RepoPath: params.RepoPath,
	}); err != nil {
		return "", err
	}

	w.logger.Logf("Refreshing remote state")
	if err := w.git.FetchRemote(params.RepoPath); err != nil {
		return "", fmt.Errorf("failed to refresh remote state: %w", err)
	}

	defaultBranch := w.git.DefaultBranch(params.RepoPath)
	w.logger.Logf("Default branch resolved to %s", defaultBranch)

	if err := w.git.FetchBranch(params.RepoPath, defaultBranch); err != nil {
		return "", fmt.Errorf("failed to update tracking ref of default branch %s: %w", defaultBranch, err)
	}

	branchExists := w.git.BranchExistsOnRemote(params.RepoPath, params.Branch)
	if !branchExists {
		if conflict := w.git.CheckBranchConflict(params.RepoPath, params.Branch); conflict != "" {
			return "", fmt.Errorf("%w: cannot create branch %q because branch %q already exists",
				ErrBranchNameConflict, params.Branch, conflict)
		}
	}

	if err := w.fs.MkdirAll(filepath.Dir(params.WorktreePath), 0o755); err != nil {
		return "", fmt.Errorf("failed to create worktree parent directory: %w", err)
	}

	startPoint := "origin/" + defaultBranch
	if branchExists {
		// The branch may have appeared between the general fetch and the
		// existence check; fetch it explicitly before using its tracking ref.
		if err := w.git.FetchBranch(params.RepoPath, params.Branch); err != nil {
			return "", fmt.Errorf("failed to fetch branch %s: %w", params.Branch, err)
		}
		startPoint = "origin/" + params.Branch
		w.logger.Logf("Branch %s exists on remote, tracking %s", params.Branch, startPoint)
	} else {
		w.logger.Logf("Branch %s does not exist on remote, forking from %s", params.Branch, startPoint)
	}

	if err := w.git.AddWorktree(git.AddWorktreeParams{
		RepoPath:     params.RepoPath,
		WorktreePath: params.WorktreePath,
		Branch:       params.Branch,
		StartPoint:   startPoint,
		Timeout:      w.cloneTimeout,
		OnProgress:   func(line string) { w.logger.Logf("  %s", line) },
	}); err != nil {
		return "", err
	}

	message := fmt.Sprintf("Created worktree at %s tracking origin/%s", params.WorktreePath, params.Branch)
	if !branchExists {
		w.logger.Logf("Pushing new branch %s upstream", params.Branch)
		if err := w.git.PushUpstream(params.WorktreePath, params.Branch); err != nil {
			return "", fmt.Errorf("failed to push branch %s upstream: %w", params.Branch, err)
		}
		message = fmt.Sprintf("Created worktree at %s on new branch %s (forked from %s, pushed upstream)",
			params.WorktreePath, params.Branch, startPoint)
	}

	w.recordInStatus(params)

	w.logger.Logf("%s", message)
	return message, nil
}

// recordInStatus registers the repository and worktree in the registry. The
// registry is advisory; disk is the source of truth, so failures here are
// logged and never fail a provisioning that already succeeded.
func (w *realWorktree) recordInStatus(params CreateParams) {
	if err := w.statusManager.AddRepository(params.RepoPath, params.RepoURL); err != nil {
		w.logger.Logf("Warning: failed to record repository in status: %v", err)
		return
	}
	if err := w.statusManager.AddWorktree(status.AddWorktreeParams{
		RepoPath:     params.RepoPath,
		Branch:       params.Branch,
		WorktreePath: params.WorktreePath,
	}); err != nil {
		w.logger.Logf("Warning: failed to record worktree in status: %v", err)
	}
}
