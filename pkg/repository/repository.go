// Package repository manages main repository clones: probing whether a path
// already holds a repository, making sure one exists, and cloning onto a
// requested branch.
package repository

import (
	"time"

	"github.com/arbordev/arbor/pkg/fs"
	"github.com/arbordev/arbor/pkg/git"
	"github.com/arbordev/arbor/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=repository.go -destination=mocks/repository.gen.go -package=mocks

// Repository interface provides main repository management capabilities.
type Repository interface {
	// Exists checks whether the path already contains a Git repository. The
	// filesystem is the source of truth and may be mutated externally, so
	// the check is repeated on every operation rather than cached.
	Exists(repoPath string) (bool, error)

	// EnsureExists makes sure the main repository exists: clone it when
	// absent, fetch remote state into it when present. Idempotent and safe
	// to repeat.
	EnsureExists(params EnsureExistsParams) error

	// Clone clones a remote into a target path, optionally on a named
	// branch, creating and pushing the branch when it does not yet exist
	// remotely.
	Clone(params CloneParams) error

	// SetLogger sets the logger for this Repository instance.
	SetLogger(logger logger.Logger)
}

// EnsureExistsParams contains parameters for EnsureExists.
type EnsureExistsParams struct {
	URL      string
	RepoPath string
}

// CloneParams contains parameters for Clone.
type CloneParams struct {
	URL        string
	TargetPath string
	Branch     string // empty means the remote's default branch
}

// NewRepositoryParams contains parameters for creating a new Repository instance.
type NewRepositoryParams struct {
	FS           fs.FS
	Git          git.Git
	Logger       logger.Logger
	CloneTimeout time.Duration
}

type realRepository struct {
	fs           fs.FS
	git          git.Git
	logger       logger.Logger
	cloneTimeout time.Duration
}

// NewRepository creates a new Repository instance.
func NewRepository(params NewRepositoryParams) Repository {
	l := params.Logger
	if l == nil {
		l = logger.NewNoopLogger()
	}
	return &realRepository{
		fs:           params.FS,
		git:          params.Git,
		logger:       l,
		cloneTimeout: params.CloneTimeout,
	}
}

// SetLogger sets the logger for this Repository instance.
func (r *realRepository) SetLogger(logger logger.Logger) {
	r.logger = logger
}

// logProgress forwards one line of subprocess output to the logger.
func (r *realRepository) logProgress(line string) {
	r.logger.Logf("  %s", line)
}
