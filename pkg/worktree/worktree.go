// Package worktree orchestrates the lifecycle of branch-scoped worktrees:
// provisioning them from remote state and tearing them down again.
package worktree

import (
	"time"

	"github.com/arbordev/arbor/pkg/fs"
	"github.com/arbordev/arbor/pkg/git"
	"github.com/arbordev/arbor/pkg/logger"
	"github.com/arbordev/arbor/pkg/repository"
	"github.com/arbordev/arbor/pkg/status"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=worktree.go -destination=mocks/worktree.gen.go -package=mocks

// Worktree interface provides worktree lifecycle capabilities.
type Worktree interface {
	// Create provisions a worktree bound to a branch, tracking the remote
	// branch of the same name when it exists or forking fresh from the
	// default branch (and pushing it upstream) when it does not. Returns a
	// human-readable outcome message.
	Create(params CreateParams) (string, error)

	// Remove tears a worktree down: detach from Git tracking, delete the
	// directory, prune stale metadata, and optionally delete the local
	// branch. Returns a human-readable outcome message.
	Remove(params RemoveParams) (string, error)

	// Checkout checks out a branch inside an existing worktree.
	Checkout(worktreePath, branch string) error

	// Pull fast-forwards an existing worktree.
	Pull(worktreePath string) error

	// SetLogger sets the logger for this Worktree instance.
	SetLogger(logger logger.Logger)
}

// CreateParams contains parameters for worktree creation.
type CreateParams struct {
	RepoURL      string
	RepoPath     string
	WorktreePath string
	Branch       string
}

// RemoveParams contains parameters for worktree removal. Branch is optional;
// when set, the local branch is force-deleted after the worktree is gone.
type RemoveParams struct {
	RepoPath     string
	WorktreePath string
	Branch       string
}

// NewWorktreeParams contains parameters for creating a new Worktree instance.
type NewWorktreeParams struct {
	FS            fs.FS
	Git           git.Git
	Repository    repository.Repository
	StatusManager status.Manager
	Logger        logger.Logger
	CloneTimeout  time.Duration
}

type realWorktree struct {
	fs            fs.FS
	git           git.Git
	repository    repository.Repository
	statusManager status.Manager
	logger        logger.Logger
	cloneTimeout  time.Duration
}

// NewWorktree creates a new Worktree instance.
func NewWorktree(params NewWorktreeParams) Worktree {
	l := params.Logger
	if l == nil {
		l = logger.NewNoopLogger()
	}
	return &realWorktree{
		fs:            params.FS,
		git:           params.Git,
		repository:    params.Repository,
		statusManager: params.StatusManager,
		logger:        l,
		cloneTimeout:  params.CloneTimeout,
	}
}

// SetLogger sets the logger for this Worktree instance.
func (w *realWorktree) SetLogger(logger logger.Logger) {
	w.logger = logger
}
