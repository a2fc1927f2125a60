//go:build integration

package worktree

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arbordev/arbor/pkg/executor"
	"github.com/arbordev/arbor/pkg/fs"
	"github.com/arbordev/arbor/pkg/git"
	"github.com/arbordev/arbor/pkg/logger"
	"github.com/arbordev/arbor/pkg/repository"
	"github.com/arbordev/arbor/pkg/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type integrationEnv struct {
	worktree Worktree
	git      git.Git
	remote   string
	repoPath string
	treesDir string
}

func setupIntegrationEnv(t *testing.T) integrationEnv {
	t.Helper()

	fsInstance := fs.NewFS()
	gitInstance := git.NewGit(executor.NewExecutor())
	remote := git.SetupTestRemote(t)

	baseDir := t.TempDir()
	repoPath := filepath.Join(baseDir, "repos", "repo")
	statusManager := status.NewManager(fsInstance, filepath.Join(baseDir, "status.yaml"))

	repoInstance := repository.NewRepository(repository.NewRepositoryParams{
		FS:     fsInstance,
		Git:    gitInstance,
		Logger: logger.NewNoopLogger(),
	})

	w := NewWorktree(NewWorktreeParams{
		FS:            fsInstance,
		Git:           gitInstance,
		Repository:    repoInstance,
		StatusManager: statusManager,
		Logger:        logger.NewNoopLogger(),
	})

	return integrationEnv{
		worktree: w,
		git:      gitInstance,
		remote:   remote,
		repoPath: repoPath,
		treesDir: filepath.Join(baseDir, "worktrees"),
	}
}

func TestCreate_NewBranchEndToEnd(t *testing.T) {
	env := setupIntegrationEnv(t)
	worktreePath := filepath.Join(env.treesDir, "release-1")

	message, err := env.worktree.Create(CreateParams{
		RepoURL:      env.remote,
		RepoPath:     env.repoPath,
		WorktreePath: worktreePath,
		Branch:       "release-1",
	})
	require.NoError(t, err)
	assert.Contains(t, message, "release-1")

	// Checkout exists and sits on the new branch.
	_, err = os.Stat(filepath.Join(worktreePath, "README.md"))
	require.NoError(t, err)

	// The branch was pushed upstream with tracking established.
	assert.True(t, env.git.BranchExistsOnRemote(env.repoPath, "release-1"))
}

func TestCreate_ExistingBranchEndToEnd(t *testing.T) {
	env := setupIntegrationEnv(t)

	seed := git.CloneTestRemote(t, env.remote)
	runGitHelper(t, seed, "checkout", "-b", "hotfix")
	runGitHelper(t, seed, "push", "-u", "origin", "hotfix")

	worktreePath := filepath.Join(env.treesDir, "hotfix")
	message, err := env.worktree.Create(CreateParams{
		RepoURL:      env.remote,
		RepoPath:     env.repoPath,
		WorktreePath: worktreePath,
		Branch:       "hotfix",
	})
	require.NoError(t, err)
	assert.Contains(t, message, "origin/hotfix")

	_, err = os.Stat(worktreePath)
	require.NoError(t, err)
}

func TestCreate_IsRepeatableAgainstExistingMainRepository(t *testing.T) {
	env := setupIntegrationEnv(t)

	_, err := env.worktree.Create(CreateParams{
		RepoURL:      env.remote,
		RepoPath:     env.repoPath,
		WorktreePath: filepath.Join(env.treesDir, "first"),
		Branch:       "first",
	})
	require.NoError(t, err)

	// Second creation reuses the already-cloned main repository.
	_, err = env.worktree.Create(CreateParams{
		RepoURL:      env.remote,
		RepoPath:     env.repoPath,
		WorktreePath: filepath.Join(env.treesDir, "second"),
		Branch:       "second",
	})
	require.NoError(t, err)
}

func TestCreate_ConflictRejectedEndToEnd(t *testing.T) {
	env := setupIntegrationEnv(t)

	seed := git.CloneTestRemote(t, env.remote)
	runGitHelper(t, seed, "checkout", "-b", "test/old")
	runGitHelper(t, seed, "push", "-u", "origin", "test/old")

	worktreePath := filepath.Join(env.treesDir, "test")
	_, err := env.worktree.Create(CreateParams{
		RepoURL:      env.remote,
		RepoPath:     env.repoPath,
		WorktreePath: worktreePath,
		Branch:       "test",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBranchNameConflict)
	assert.Contains(t, err.Error(), "test/old")

	_, statErr := os.Stat(worktreePath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRemove_EndToEnd(t *testing.T) {
	env := setupIntegrationEnv(t)
	worktreePath := filepath.Join(env.treesDir, "doomed")

	_, err := env.worktree.Create(CreateParams{
		RepoURL:      env.remote,
		RepoPath:     env.repoPath,
		WorktreePath: worktreePath,
		Branch:       "doomed",
	})
	require.NoError(t, err)

	_, err = env.worktree.Remove(RemoveParams{
		RepoPath:     env.repoPath,
		WorktreePath: worktreePath,
		Branch:       "doomed",
	})
	require.NoError(t, err)

	_, statErr := os.Stat(worktreePath)
	assert.True(t, os.IsNotExist(statErr))
	assert.False(t, env.git.BranchExists(env.repoPath, "doomed"))
}

func TestRemove_DirectoryGoneEvenWhenDetachFails(t *testing.T) {
	env := setupIntegrationEnv(t)
	worktreePath := filepath.Join(env.treesDir, "broken")

	_, err := env.worktree.Create(CreateParams{
		RepoURL:      env.remote,
		RepoPath:     env.repoPath,
		WorktreePath: worktreePath,
		Branch:       "broken",
	})
	require.NoError(t, err)

	// Corrupt the state: the directory disappears behind git's back, so the
	// detach step has nothing to remove and fails.
	require.NoError(t, os.RemoveAll(worktreePath))

	message, err := env.worktree.Remove(RemoveParams{
		RepoPath:     env.repoPath,
		WorktreePath: worktreePath,
		Branch:       "broken",
	})
	require.NoError(t, err)
	assert.Contains(t, message, "Git tracking was already inconsistent")

	_, statErr := os.Stat(worktreePath)
	assert.True(t, os.IsNotExist(statErr))
}

// runGitHelper mirrors the git package's test helper for use in this package.
func runGitHelper(t *testing.T, dir string, args ...string) {
	t.Helper()
	out, err := executor.NewExecutor().Run(executor.RunParams{Command: "git", Args: args, Dir: dir})
	if err != nil {
		t.Fatalf("git %v failed: %v\n%s", args, err, out)
	}
}
