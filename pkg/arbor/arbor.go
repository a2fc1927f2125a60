// Package arbor exposes the engine facade: every mutating operation is
// validated, correlated with a short operation ID, and reported as an
// OperationResult rather than a raised error.
package arbor

import (
	"fmt"

	"github.com/arbordev/arbor/pkg/config"
	"github.com/arbordev/arbor/pkg/executor"
	"github.com/arbordev/arbor/pkg/forge"
	"github.com/arbordev/arbor/pkg/fs"
	"github.com/arbordev/arbor/pkg/git"
	"github.com/arbordev/arbor/pkg/logger"
	"github.com/arbordev/arbor/pkg/repository"
	"github.com/arbordev/arbor/pkg/status"
	"github.com/arbordev/arbor/pkg/worktree"
	"github.com/google/uuid"
)

//go:generate mockgen -source=arbor.go -destination=mocks/arbor.gen.go -package=mocks

// OperationResult is the outcome boundary of the facade: operations report
// success or failure through it and never raise.
type OperationResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// Arbor is the public engine interface.
type Arbor interface {
	// CreateWorktree provisions a branch-scoped worktree, cloning the main
	// repository first when needed.
	CreateWorktree(params CreateWorktreeParams) OperationResult
	// RemoveWorktree tears a worktree down best-effort; only a failure to
	// delete the directory fails the operation.
	RemoveWorktree(params RemoveWorktreeParams) OperationResult
	// CloneRepository clones a remote into a target path, optionally onto a
	// named branch.
	CloneRepository(params CloneRepositoryParams) OperationResult
	// CheckoutWorktree checks out a branch inside an existing worktree.
	CheckoutWorktree(worktreePath, branch string) OperationResult
	// PullWorktree fast-forwards an existing worktree.
	PullWorktree(worktreePath string) OperationResult
	// ListWorktrees returns the registry snapshot for one main repository.
	ListWorktrees(repoPath string) ([]status.WorktreeInfo, error)
	// ListRepositories returns all tracked main repositories.
	ListRepositories() ([]status.RepositoryEntry, error)
	// InspectRemote classifies a repository URL and enriches it with
	// provider metadata when a provider API is reachable.
	InspectRemote(repoURL string) (*forge.RemoteInfo, error)
	// SetLogger sets the logger for this Arbor instance and its components.
	SetLogger(logger logger.Logger)
}

// CreateWorktreeParams contains parameters for CreateWorktree.
type CreateWorktreeParams struct {
	RepoURL      string
	RepoPath     string
	WorktreePath string
	Branch       string
}

// RemoveWorktreeParams contains parameters for RemoveWorktree. Branch is
// optional; when set, the local branch is deleted along with the worktree.
type RemoveWorktreeParams struct {
	RepoPath     string
	WorktreePath string
	Branch       string
}

// CloneRepositoryParams contains parameters for CloneRepository.
type CloneRepositoryParams struct {
	URL        string
	TargetPath string
	Branch     string
}

// NewArborParams contains parameters for creating a new Arbor instance. Only
// Config is required; nil components are replaced with real implementations.
type NewArborParams struct {
	Config        *config.Config
	FS            fs.FS
	Git           git.Git
	Repository    repository.Repository
	Worktree      worktree.Worktree
	StatusManager status.Manager
	ForgeManager  forge.ManagerInterface
	Logger        logger.Logger
}

type realArbor struct {
	config        *config.Config
	fs            fs.FS
	git           git.Git
	repository    repository.Repository
	worktree      worktree.Worktree
	statusManager status.Manager
	forgeManager  forge.ManagerInterface
	logger        logger.Logger
}

// NewArbor creates a new Arbor instance, wiring real components for any
// dependency left nil in params.
func NewArbor(params NewArborParams) (Arbor, error) {
	if params.Config == nil {
		return nil, ErrNilConfig
	}

	loggerInstance := params.Logger
	if loggerInstance == nil {
		loggerInstance = logger.NewNoopLogger()
	}

	fsInstance := params.FS
	if fsInstance == nil {
		fsInstance = fs.NewFS()
	}

	gitInstance := params.Git
	if gitInstance == nil {
		gitInstance = git.NewGit(executor.NewExecutor())
	}

	statusInstance := params.StatusManager
	if statusInstance == nil {
		statusInstance = status.NewManager(fsInstance, params.Config.StatusFile)
	}

	repoInstance := params.Repository
	if repoInstance == nil {
		repoInstance = repository.NewRepository(repository.NewRepositoryParams{
			FS:           fsInstance,
			Git:          gitInstance,
			Logger:       loggerInstance,
			CloneTimeout: params.Config.CloneTimeout(),
		})
	}

	worktreeInstance := params.Worktree
	if worktreeInstance == nil {
		worktreeInstance = worktree.NewWorktree(worktree.NewWorktreeParams{
			FS:            fsInstance,
			Git:           gitInstance,
			Repository:    repoInstance,
			StatusManager: statusInstance,
			Logger:        loggerInstance,
			CloneTimeout:  params.Config.CloneTimeout(),
		})
	}

	forgeInstance := params.ForgeManager
	if forgeInstance == nil {
		forgeInstance = forge.NewManager(loggerInstance)
	}

	return &realArbor{
		config:        params.Config,
		fs:            fsInstance,
		git:           gitInstance,
		repository:    repoInstance,
		worktree:      worktreeInstance,
		statusManager: statusInstance,
		forgeManager:  forgeInstance,
		logger:        loggerInstance,
	}, nil
}

// SetLogger sets the logger for this Arbor instance and its components.
func (a *realArbor) SetLogger(logger logger.Logger) {
	a.logger = logger
	a.repository.SetLogger(logger)
	a.worktree.SetLogger(logger)
}

// newOperationID returns a short correlation ID attached to every log line of
// one operation.
func newOperationID() string {
	return uuid.NewString()[:8]
}

// execute runs one operation behind the facade boundary: panics are converted
// into failures and errors into OperationResult, so neither crosses.
func (a *realArbor) execute(operationName, opID string, operation func() (string, error)) OperationResult {
	a.logger.Logf("[%s] %s started", opID, operationName)

	var message string
	var resultErr error
	func() {
		defer func() {
			if r := recover(); r != nil {
				resultErr = fmt.Errorf("panic in %s: %v", operationName, r)
			}
		}()
		message, resultErr = operation()
	}()

	if resultErr != nil {
		a.logger.Logf("[%s] %s failed: %v", opID, operationName, resultErr)
		return OperationResult{Success: false, Error: resultErr.Error()}
	}

	a.logger.Logf("[%s] %s succeeded", opID, operationName)
	return OperationResult{Success: true, Message: message}
}
