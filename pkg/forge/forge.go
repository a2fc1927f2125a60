// Package forge detects which hosting provider a repository URL belongs to
// and enriches it with provider metadata where an API is available.
package forge

import (
	"fmt"

	"github.com/arbordev/arbor/pkg/logger"
)

//go:generate mockgen -source=forge.go -destination=mocks/forge.gen.go -package=mocks

// RemoteInfo describes a remote repository as seen through its hosting
// provider. Fields past Repository are filled only when the provider API
// could be reached.
type RemoteInfo struct {
	URL           string `json:"url"`
	Provider      string `json:"provider"`
	Owner         string `json:"owner"`
	Repository    string `json:"repository"`
	DefaultBranch string `json:"default_branch,omitempty"`
	Description   string `json:"description,omitempty"`
	Private       bool   `json:"private,omitempty"`
}

// Forge is a single hosting-provider implementation.
type Forge interface {
	// Name returns the provider identifier (e.g. "github")
	Name() string

	// Matches reports whether the provider recognizes the repository URL
	Matches(repoURL string) bool

	// Inspect resolves provider metadata for the repository URL. API
	// failures degrade silently to URL-derived data only.
	Inspect(repoURL string) (*RemoteInfo, error)
}

// ManagerInterface defines the interface for provider detection.
type ManagerInterface interface {
	// GetForge returns the provider implementation for the given name
	GetForge(name string) (Forge, error)
	// GetForgeForURL returns the provider that recognizes the given URL
	GetForgeForURL(repoURL string) (Forge, error)
}

// Manager holds the registered providers and routes URLs to them.
type Manager struct {
	forges map[string]Forge
	logger logger.Logger
}

// NewManager creates a manager with all built-in providers registered.
func NewManager(logger logger.Logger) *Manager {
	m := &Manager{
		forges: make(map[string]Forge),
		logger: logger,
	}

	m.registerForges()

	return m
}

func (m *Manager) registerForges() {
	github := NewGitHub()
	m.forges[github.Name()] = github
}

// GetForge returns the provider implementation for the given name.
func (m *Manager) GetForge(name string) (Forge, error) {
	forge, exists := m.forges[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedForge, name)
	}
	return forge, nil
}

// GetForgeForURL returns the provider that recognizes the given URL.
func (m *Manager) GetForgeForURL(repoURL string) (Forge, error) {
	for _, forge := range m.forges {
		if forge.Matches(repoURL) {
			return forge, nil
		}
	}
	return nil, fmt.Errorf("%w: no provider recognizes %s", ErrUnsupportedForge, repoURL)
}
