// Package git drives the installed git executable and translates its textual
// output for the rest of the engine. All remote interaction goes through the
// "origin" remote.
package git

import (
	"time"

	"github.com/arbordev/arbor/pkg/executor"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=git.go -destination=mocks/git.gen.go -package=mocks

// NetworkTimeout bounds fetch, push and pull subprocess calls.
const NetworkTimeout = 2 * time.Minute

// Git interface provides Git command execution capabilities.
type Git interface {
	// DefaultBranch resolves the branch the remote considers primary. It
	// never fails; when every resolution tier is exhausted it returns "main".
	DefaultBranch(repoPath string) string

	// ListRemoteBranches lists the branch heads on the remote.
	ListRemoteBranches(repoPath string) ([]string, error)

	// BranchExistsOnRemote checks whether a branch exists on the remote by
	// exact name. An unreachable remote reports false, not an error.
	BranchExistsOnRemote(repoPath, branch string) bool

	// BranchExists checks whether a branch exists locally.
	BranchExists(repoPath, branch string) bool

	// CheckBranchConflict reports the existing remote branch that collides
	// with candidate in the reference namespace, or "" when there is none.
	CheckBranchConflict(repoPath, candidate string) string

	// Clone clones a repository to the specified path.
	Clone(params CloneParams) error

	// FetchRemote fetches all remote state from origin.
	FetchRemote(repoPath string) error

	// FetchBranch force-updates the remote-tracking reference of one branch.
	FetchBranch(repoPath, branch string) error

	// AddWorktree creates a worktree on a new local branch started from the
	// given reference.
	AddWorktree(params AddWorktreeParams) error

	// RemoveWorktree removes a worktree from Git's tracking, discarding
	// local modifications.
	RemoveWorktree(repoPath, worktreePath string) error

	// PruneWorktrees prunes stale worktree metadata in the main repository.
	PruneWorktrees(repoPath string) error

	// DeleteBranch force-deletes a local branch.
	DeleteBranch(repoPath, branch string) error

	// PushUpstream pushes a branch to origin with upstream tracking
	// established, executed from within the given directory.
	PushUpstream(worktreePath, branch string) error

	// CheckoutNewBranch creates and checks out a new branch.
	CheckoutNewBranch(repoPath, branch string) error

	// CheckoutBranch checks out an existing branch in the given worktree.
	CheckoutBranch(worktreePath, branch string) error

	// Pull fast-forwards the current branch of the given worktree.
	Pull(worktreePath string) error
}

type realGit struct {
	exec executor.Executor
}

// NewGit creates a new Git instance on top of the given executor.
func NewGit(exec executor.Executor) Git {
	return &realGit{
		exec: exec,
	}
}

// run executes a git command in repoPath and returns its standard output.
func (g *realGit) run(repoPath string, timeout time.Duration, args ...string) (string, error) {
	return g.exec.Run(executor.RunParams{
		Command: "git",
		Args:    args,
		Dir:     repoPath,
		Timeout: timeout,
	})
}
