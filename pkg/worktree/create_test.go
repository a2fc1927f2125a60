//go:build unit

package worktree

import (
	"errors"
	"testing"
	"time"

	fsmocks "github.com/arbordev/arbor/pkg/fs/mocks"
	"github.com/arbordev/arbor/pkg/git"
	gitmocks "github.com/arbordev/arbor/pkg/git/mocks"
	"github.com/arbordev/arbor/pkg/logger"
	repomocks "github.com/arbordev/arbor/pkg/repository/mocks"
	"github.com/arbordev/arbor/pkg/status"
	statusmocks "github.com/arbordev/arbor/pkg/status/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testDeps struct {
	fs     *fsmocks.MockFS
	git    *gitmocks.MockGit
	repo   *repomocks.MockRepository
	status *statusmocks.MockManager
}

func newTestWorktree(t *testing.T) (Worktree, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	deps := testDeps{
		fs:     fsmocks.NewMockFS(ctrl),
		git:    gitmocks.NewMockGit(ctrl),
		repo:   repomocks.NewMockRepository(ctrl),
		status: statusmocks.NewMockManager(ctrl),
	}
	w := NewWorktree(NewWorktreeParams{
		FS:            deps.fs,
		Git:           deps.git,
		Repository:    deps.repo,
		StatusManager: deps.status,
		Logger:        logger.NewNoopLogger(),
		CloneTimeout:  10 * time.Minute,
	})
	return w, deps
}

var createParams = CreateParams{
	RepoURL:      "https://github.com/owner/repo.git",
	RepoPath:     "/repos/github.com/owner/repo",
	WorktreePath: "/worktrees/github.com/owner/repo/release-1",
	Branch:       "release-1",
}

func expectStatusRecording(deps testDeps, params CreateParams) {
	deps.status.EXPECT().AddRepository(params.RepoPath, params.RepoURL).Return(nil)
	deps.status.EXPECT().AddWorktree(status.AddWorktreeParams{
		RepoPath:     params.RepoPath,
		Branch:       params.Branch,
		WorktreePath: params.WorktreePath,
	}).Return(nil)
}

func TestCreate_NewBranchForksFromDefaultAndPushes(t *testing.T) {
	w, deps := newTestWorktree(t)

	deps.repo.EXPECT().EnsureExists(gomock.Any()).Return(nil)
	deps.git.EXPECT().FetchRemote(createParams.RepoPath).Return(nil)
	deps.git.EXPECT().DefaultBranch(createParams.RepoPath).Return("main")
	deps.git.EXPECT().FetchBranch(createParams.RepoPath, "main").Return(nil)
	deps.git.EXPECT().BranchExistsOnRemote(createParams.RepoPath, "release-1").Return(false)
	deps.git.EXPECT().CheckBranchConflict(createParams.RepoPath, "release-1").Return("")
	deps.fs.EXPECT().MkdirAll("/worktrees/github.com/owner/repo", gomock.Any()).Return(nil)
	deps.git.EXPECT().AddWorktree(gomock.Any()).
		DoAndReturn(func(p git.AddWorktreeParams) error {
			assert.Equal(t, "origin/main", p.StartPoint)
			assert.Equal(t, "release-1", p.Branch)
			assert.Equal(t, createParams.WorktreePath, p.WorktreePath)
			assert.Equal(t, 10*time.Minute, p.Timeout)
			return nil
		})
	deps.git.EXPECT().PushUpstream(createParams.WorktreePath, "release-1").Return(nil)
	expectStatusRecording(deps, createParams)

	message, err := w.Create(createParams)
	require.NoError(t, err)
	assert.Contains(t, message, "release-1")
	assert.Contains(t, message, "origin/main")
}

func TestCreate_ExistingBranchTracksRemoteWithoutPush(t *testing.T) {
	w, deps := newTestWorktree(t)
	params := createParams
	params.Branch = "hotfix"
	params.WorktreePath = "/worktrees/github.com/owner/repo/hotfix"

	deps.repo.EXPECT().EnsureExists(gomock.Any()).Return(nil)
	deps.git.EXPECT().FetchRemote(params.RepoPath).Return(nil)
	deps.git.EXPECT().DefaultBranch(params.RepoPath).Return("main")
	deps.git.EXPECT().FetchBranch(params.RepoPath, "main").Return(nil)
	deps.git.EXPECT().BranchExistsOnRemote(params.RepoPath, "hotfix").Return(true)
	deps.fs.EXPECT().MkdirAll(gomock.Any(), gomock.Any()).Return(nil)
	deps.git.EXPECT().FetchBranch(params.RepoPath, "hotfix").Return(nil)
	deps.git.EXPECT().AddWorktree(gomock.Any()).
		DoAndReturn(func(p git.AddWorktreeParams) error {
			assert.Equal(t, "origin/hotfix", p.StartPoint)
			return nil
		})
	// No CheckBranchConflict and no PushUpstream expectations: the mock
	// controller fails the test if either is invoked.
	expectStatusRecording(deps, params)

	message, err := w.Create(params)
	require.NoError(t, err)
	assert.Contains(t, message, "origin/hotfix")
}

func TestCreate_NamespaceConflictAbortsBeforeWorktreeAdd(t *testing.T) {
	w, deps := newTestWorktree(t)
	params := createParams
	params.Branch = "test"

	deps.repo.EXPECT().EnsureExists(gomock.Any()).Return(nil)
	deps.git.EXPECT().FetchRemote(params.RepoPath).Return(nil)
	deps.git.EXPECT().DefaultBranch(params.RepoPath).Return("main")
	deps.git.EXPECT().FetchBranch(params.RepoPath, "main").Return(nil)
	deps.git.EXPECT().BranchExistsOnRemote(params.RepoPath, "test").Return(false)
	deps.git.EXPECT().CheckBranchConflict(params.RepoPath, "test").Return("test/old")
	// No AddWorktree expectation: the worktree-creation subprocess must not
	// be invoked at all on a conflict.

	_, err := w.Create(params)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBranchNameConflict)
	assert.Contains(t, err.Error(), "test/old")
}

func TestCreate_EnsureFailureShortCircuits(t *testing.T) {
	w, deps := newTestWorktree(t)

	deps.repo.EXPECT().EnsureExists(gomock.Any()).Return(errors.New("clone failed"))

	_, err := w.Create(createParams)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "clone failed")
}

func TestCreate_FetchFailureShortCircuits(t *testing.T) {
	w, deps := newTestWorktree(t)

	deps.repo.EXPECT().EnsureExists(gomock.Any()).Return(nil)
	deps.git.EXPECT().FetchRemote(createParams.RepoPath).Return(errors.New("remote unreachable"))

	_, err := w.Create(createParams)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to refresh remote state")
}

func TestCreate_WorktreeAddFailureIsPropagated(t *testing.T) {
	w, deps := newTestWorktree(t)

	deps.repo.EXPECT().EnsureExists(gomock.Any()).Return(nil)
	deps.git.EXPECT().FetchRemote(createParams.RepoPath).Return(nil)
	deps.git.EXPECT().DefaultBranch(createParams.RepoPath).Return("main")
	deps.git.EXPECT().FetchBranch(createParams.RepoPath, "main").Return(nil)
	deps.git.EXPECT().BranchExistsOnRemote(createParams.RepoPath, "release-1").Return(false)
	deps.git.EXPECT().CheckBranchConflict(createParams.RepoPath, "release-1").Return("")
	deps.fs.EXPECT().MkdirAll(gomock.Any(), gomock.Any()).Return(nil)
	deps.git.EXPECT().AddWorktree(gomock.Any()).Return(git.ErrFilteringContent)

	_, err := w.Create(createParams)
	require.Error(t, err)
	assert.ErrorIs(t, err, git.ErrFilteringContent)
}

func TestCreate_StatusFailureDoesNotFailOperation(t *testing.T) {
	w, deps := newTestWorktree(t)
	params := createParams
	params.Branch = "hotfix"

	deps.repo.EXPECT().EnsureExists(gomock.Any()).Return(nil)
	deps.git.EXPECT().FetchRemote(params.RepoPath).Return(nil)
	deps.git.EXPECT().DefaultBranch(params.RepoPath).Return("main")
	deps.git.EXPECT().FetchBranch(params.RepoPath, "main").Return(nil)
	deps.git.EXPECT().BranchExistsOnRemote(params.RepoPath, "hotfix").Return(true)
	deps.fs.EXPECT().MkdirAll(gomock.Any(), gomock.Any()).Return(nil)
	deps.git.EXPECT().FetchBranch(params.RepoPath, "hotfix").Return(nil)
	deps.git.EXPECT().AddWorktree(gomock.Any()).Return(nil)
	deps.status.EXPECT().AddRepository(gomock.Any(), gomock.Any()).
		Return(errors.New("status file locked"))

	_, err := w.Create(params)
	require.NoError(t, err)
}
