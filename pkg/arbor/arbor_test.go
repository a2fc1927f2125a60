//go:build unit

package arbor_test

import (
	"errors"
	"testing"

	"github.com/arbordev/arbor/pkg/arbor"
	"github.com/arbordev/arbor/pkg/config"
	"github.com/arbordev/arbor/pkg/forge"
	forgemocks "github.com/arbordev/arbor/pkg/forge/mocks"
	repomocks "github.com/arbordev/arbor/pkg/repository/mocks"
	"github.com/arbordev/arbor/pkg/repourl"
	"github.com/arbordev/arbor/pkg/status"
	statusmocks "github.com/arbordev/arbor/pkg/status/mocks"
	"github.com/arbordev/arbor/pkg/worktree"
	worktreemocks "github.com/arbordev/arbor/pkg/worktree/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testDeps struct {
	repository *repomocks.MockRepository
	worktree   *worktreemocks.MockWorktree
	status     *statusmocks.MockManager
	forge      *forgemocks.MockManagerInterface
}

func newTestArbor(t *testing.T) (arbor.Arbor, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	deps := testDeps{
		repository: repomocks.NewMockRepository(ctrl),
		worktree:   worktreemocks.NewMockWorktree(ctrl),
		status:     statusmocks.NewMockManager(ctrl),
		forge:      forgemocks.NewMockManagerInterface(ctrl),
	}

	instance, err := arbor.NewArbor(arbor.NewArborParams{
		Config: &config.Config{
			RepositoriesDir: "/repos",
			WorktreesDir:    "/worktrees",
			StatusFile:      "/status.yaml",
		},
		Repository:    deps.repository,
		Worktree:      deps.worktree,
		StatusManager: deps.status,
		ForgeManager:  deps.forge,
	})
	require.NoError(t, err)
	return instance, deps
}

var createParams = arbor.CreateWorktreeParams{
	RepoURL:      "https://github.com/owner/repo.git",
	RepoPath:     "/repos/github.com/owner/repo",
	WorktreePath: "/worktrees/github.com/owner/repo/release-1",
	Branch:       "release-1",
}

func TestNewArbor_RequiresConfig(t *testing.T) {
	_, err := arbor.NewArbor(arbor.NewArborParams{})
	require.Error(t, err)
	assert.ErrorIs(t, err, arbor.ErrNilConfig)
}

func TestCreateWorktree_DelegatesToWorktree(t *testing.T) {
	a, deps := newTestArbor(t)

	deps.worktree.EXPECT().Create(worktree.CreateParams{
		RepoURL:      createParams.RepoURL,
		RepoPath:     createParams.RepoPath,
		WorktreePath: createParams.WorktreePath,
		Branch:       createParams.Branch,
	}).Return("Created worktree for release-1", nil)

	result := a.CreateWorktree(createParams)
	assert.True(t, result.Success)
	assert.Contains(t, result.Message, "release-1")
	assert.Empty(t, result.Error)
}

func TestCreateWorktree_RejectsInvalidURL(t *testing.T) {
	a, _ := newTestArbor(t)
	params := createParams
	params.RepoURL = "not a url"

	// No component expectations: validation fails before anything runs.
	result := a.CreateWorktree(params)
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, repourl.ErrInvalidRepositoryURL.Error())
}

func TestCreateWorktree_RejectsEmptyBranch(t *testing.T) {
	a, _ := newTestArbor(t)
	params := createParams
	params.Branch = ""

	result := a.CreateWorktree(params)
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, arbor.ErrEmptyBranch.Error())
}

func TestCreateWorktree_ComponentErrorBecomesResult(t *testing.T) {
	a, deps := newTestArbor(t)

	deps.worktree.EXPECT().Create(gomock.Any()).
		Return("", errors.New("remote unreachable"))

	result := a.CreateWorktree(createParams)
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "remote unreachable")
}

func TestCreateWorktree_PanicIsRecovered(t *testing.T) {
	a, deps := newTestArbor(t)

	deps.worktree.EXPECT().Create(gomock.Any()).
		DoAndReturn(func(worktree.CreateParams) (string, error) {
			panic("nil dereference")
		})

	result := a.CreateWorktree(createParams)
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "panic")
	assert.Contains(t, result.Error, "nil dereference")
}

func TestRemoveWorktree_DelegatesToWorktree(t *testing.T) {
	a, deps := newTestArbor(t)

	deps.worktree.EXPECT().Remove(worktree.RemoveParams{
		RepoPath:     "/repos/github.com/owner/repo",
		WorktreePath: "/worktrees/github.com/owner/repo/release-1",
		Branch:       "release-1",
	}).Return("Removed worktree", nil)

	result := a.RemoveWorktree(arbor.RemoveWorktreeParams{
		RepoPath:     "/repos/github.com/owner/repo",
		WorktreePath: "/worktrees/github.com/owner/repo/release-1",
		Branch:       "release-1",
	})
	assert.True(t, result.Success)
}

func TestRemoveWorktree_RejectsEmptyPaths(t *testing.T) {
	a, _ := newTestArbor(t)

	result := a.RemoveWorktree(arbor.RemoveWorktreeParams{WorktreePath: "/x"})
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, arbor.ErrEmptyRepoPath.Error())

	result = a.RemoveWorktree(arbor.RemoveWorktreeParams{RepoPath: "/x"})
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, arbor.ErrEmptyWorktreePath.Error())
}

func TestCloneRepository_RecordsInRegistry(t *testing.T) {
	a, deps := newTestArbor(t)

	gomock.InOrder(
		deps.repository.EXPECT().Clone(gomock.Any()).Return(nil),
		deps.status.EXPECT().AddRepository("/repos/github.com/owner/repo", createParams.RepoURL).Return(nil),
	)

	result := a.CloneRepository(arbor.CloneRepositoryParams{
		URL:        createParams.RepoURL,
		TargetPath: "/repos/github.com/owner/repo",
	})
	assert.True(t, result.Success)
	assert.Contains(t, result.Message, "repo")
}

func TestCloneRepository_RegistryFailureIsSwallowed(t *testing.T) {
	a, deps := newTestArbor(t)

	deps.repository.EXPECT().Clone(gomock.Any()).Return(nil)
	deps.status.EXPECT().AddRepository(gomock.Any(), gomock.Any()).
		Return(errors.New("status file locked"))

	result := a.CloneRepository(arbor.CloneRepositoryParams{
		URL:        createParams.RepoURL,
		TargetPath: "/repos/github.com/owner/repo",
	})
	assert.True(t, result.Success)
}

func TestCloneRepository_CloneFailureFailsOperation(t *testing.T) {
	a, deps := newTestArbor(t)

	deps.repository.EXPECT().Clone(gomock.Any()).Return(errors.New("authentication failed"))

	result := a.CloneRepository(arbor.CloneRepositoryParams{
		URL:        createParams.RepoURL,
		TargetPath: "/repos/github.com/owner/repo",
	})
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "authentication failed")
}

func TestCheckoutWorktree_Delegates(t *testing.T) {
	a, deps := newTestArbor(t)

	deps.worktree.EXPECT().Checkout("/worktrees/x", "fix").Return(nil)

	result := a.CheckoutWorktree("/worktrees/x", "fix")
	assert.True(t, result.Success)
}

func TestPullWorktree_Delegates(t *testing.T) {
	a, deps := newTestArbor(t)

	deps.worktree.EXPECT().Pull("/worktrees/x").Return(nil)

	result := a.PullWorktree("/worktrees/x")
	assert.True(t, result.Success)
}

func TestListWorktrees_ReturnsRegistrySnapshot(t *testing.T) {
	a, deps := newTestArbor(t)

	deps.status.EXPECT().ListWorktrees("/repos/x").Return([]status.WorktreeInfo{
		{Branch: "release-1", Path: "/worktrees/release-1"},
	}, nil)

	worktrees, err := a.ListWorktrees("/repos/x")
	require.NoError(t, err)
	require.Len(t, worktrees, 1)
	assert.Equal(t, "release-1", worktrees[0].Branch)
}

func TestListRepositories_ReturnsRegistrySnapshot(t *testing.T) {
	a, deps := newTestArbor(t)

	deps.status.EXPECT().ListRepositories().Return([]status.RepositoryEntry{
		{Path: "/repos/x", Repository: status.Repository{URL: createParams.RepoURL}},
	}, nil)

	repositories, err := a.ListRepositories()
	require.NoError(t, err)
	require.Len(t, repositories, 1)
}

func TestInspectRemote_DelegatesToProvider(t *testing.T) {
	a, deps := newTestArbor(t)
	ctrl := gomock.NewController(t)
	provider := forgemocks.NewMockForge(ctrl)

	deps.forge.EXPECT().GetForgeForURL(createParams.RepoURL).Return(provider, nil)
	provider.EXPECT().Inspect(createParams.RepoURL).Return(&forge.RemoteInfo{
		URL:           createParams.RepoURL,
		Provider:      "github",
		Owner:         "owner",
		Repository:    "repo",
		DefaultBranch: "main",
	}, nil)

	info, err := a.InspectRemote(createParams.RepoURL)
	require.NoError(t, err)
	assert.Equal(t, "github", info.Provider)
	assert.Equal(t, "main", info.DefaultBranch)
}

func TestInspectRemote_UnknownProviderDegradesToURLData(t *testing.T) {
	a, deps := newTestArbor(t)
	url := "https://git.example.com/owner/repo.git"

	deps.forge.EXPECT().GetForgeForURL(url).Return(nil, forge.ErrUnsupportedForge)

	info, err := a.InspectRemote(url)
	require.NoError(t, err)
	assert.Equal(t, arbor.GenericProvider, info.Provider)
	assert.Equal(t, "repo", info.Repository)
	assert.Empty(t, info.DefaultBranch)
}

func TestInspectRemote_RejectsInvalidURL(t *testing.T) {
	a, _ := newTestArbor(t)

	_, err := a.InspectRemote("definitely not a url")
	require.Error(t, err)
	assert.ErrorIs(t, err, repourl.ErrInvalidRepositoryURL)
}
