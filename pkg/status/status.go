package status

import (
	"fmt"
	"sort"

	"github.com/arbordev/arbor/pkg/fs"
	"gopkg.in/yaml.v3"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=status.go -destination=mocks/status.gen.go -package=mocks

// Status represents the status.yaml registry structure.
type Status struct {
	Repositories map[string]Repository `yaml:"repositories"`
}

// Repository represents one main repository entry, keyed by its checkout path.
type Repository struct {
	URL       string                  `yaml:"url,omitempty"`
	Worktrees map[string]WorktreeInfo `yaml:"worktrees,omitempty"`
}

// WorktreeInfo represents a tracked worktree bound to one branch.
type WorktreeInfo struct {
	Branch string `yaml:"branch"`
	Path   string `yaml:"path"`
}

// RepositoryEntry pairs a repository with its main checkout path.
type RepositoryEntry struct {
	Path       string
	Repository Repository
}

// AddWorktreeParams contains parameters for AddWorktree.
type AddWorktreeParams struct {
	RepoPath     string
	Branch       string
	WorktreePath string
}

// Manager interface provides status file management functionality.
type Manager interface {
	// AddRepository records a main repository in the status file.
	AddRepository(repoPath, url string) error

	// GetRepository retrieves a repository entry by its checkout path.
	GetRepository(repoPath string) (Repository, error)

	// RemoveRepository removes a repository entry and all its worktrees.
	RemoveRepository(repoPath string) error

	// ListRepositories lists all tracked repositories sorted by path.
	ListRepositories() ([]RepositoryEntry, error)

	// AddWorktree records a worktree under its main repository.
	AddWorktree(params AddWorktreeParams) error

	// GetWorktree retrieves a tracked worktree by branch.
	GetWorktree(repoPath, branch string) (WorktreeInfo, error)

	// RemoveWorktree removes a tracked worktree by branch.
	RemoveWorktree(repoPath, branch string) error

	// ListWorktrees lists the worktrees of a repository sorted by branch.
	ListWorktrees(repoPath string) ([]WorktreeInfo, error)
}

type realManager struct {
	fs         fs.FS
	statusFile string
}

// NewManager creates a new status Manager persisting to statusFile.
func NewManager(fs fs.FS, statusFile string) Manager {
	return &realManager{
		fs:         fs,
		statusFile: statusFile,
	}
}

// loadStatus loads the status from the status file. A missing file yields an
// empty status without creating anything on disk.
func (s *realManager) loadStatus() (*Status, error) {
	if s.statusFile == "" {
		return nil, ErrStatusFileNotConfigured
	}

	exists, err := s.fs.Exists(s.statusFile)
	if err != nil {
		return nil, fmt.Errorf("failed to check status file existence: %w", err)
	}

	if !exists {
		return &Status{Repositories: make(map[string]Repository)}, nil
	}

	data, err := s.fs.ReadFile(s.statusFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read status file: %w", err)
	}

	var status Status
	if err := yaml.Unmarshal(data, &status); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStatusFileParse, err)
	}

	if status.Repositories == nil {
		status.Repositories = make(map[string]Repository)
	}

	return &status, nil
}

// saveStatus saves the status to the status file atomically under a file lock.
func (s *realManager) saveStatus(status *Status) error {
	if s.statusFile == "" {
		return ErrStatusFileNotConfigured
	}

	// Acquire file lock
	unlock, err := s.fs.FileLock(s.statusFile)
	if err != nil {
		return fmt.Errorf("failed to acquire file lock: %w", err)
	}
	defer unlock()

	// Marshal status to YAML
	data, err := yaml.Marshal(status)
	if err != nil {
		return fmt.Errorf("failed to marshal status: %w", err)
	}

	// Write status file atomically
	if err := s.fs.WriteFileAtomic(s.statusFile, data, 0600); err != nil {
		return fmt.Errorf("failed to write status file: %w", err)
	}

	return nil
}

func sortedWorktrees(repo Repository) []WorktreeInfo {
	worktrees := make([]WorktreeInfo, 0, len(repo.Worktrees))
	for _, info := range repo.Worktrees {
		worktrees = append(worktrees, info)
	}
	sort.Slice(worktrees, func(i, j int) bool {
		return worktrees[i].Branch < worktrees[j].Branch
	})
	return worktrees
}
