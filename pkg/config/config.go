// Package config provides configuration management for the arbor engine and CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=config.go -destination=mocks/config.gen.go -package=mocks

// DefaultCloneTimeout bounds clone and worktree-add subprocess calls when the
// configuration does not override it.
const DefaultCloneTimeout = 10 * time.Minute

// Config represents the application configuration.
type Config struct {
	RepositoriesDir     string `yaml:"repositories_dir"`
	WorktreesDir        string `yaml:"worktrees_dir"`
	StatusFile          string `yaml:"status_file"`
	CloneTimeoutMinutes int    `yaml:"clone_timeout_minutes,omitempty"`
}

// Manager interface provides configuration management with an embedded config path.
type Manager interface {
	GetConfigStrict() (Config, error)
	GetConfigWithFallback() (Config, error)
	SaveConfig(config Config) error
	GetConfigPath() string
	DefaultConfig() Config
}

// realManager manages configuration with an embedded config path.
type realManager struct {
	configPath string
}

// NewManager creates a new Manager instance with the specified config path.
func NewManager(configPath string) Manager {
	return &realManager{
		configPath: configPath,
	}
}

// GetConfigStrict loads configuration and returns an error if the file is missing.
func (c *realManager) GetConfigStrict() (Config, error) {
	// Check if config file exists
	if _, err := os.Stat(c.configPath); os.IsNotExist(err) {
		return Config{}, fmt.Errorf("%w: %s", ErrConfigNotInitialized, c.configPath)
	}

	// Read config file
	data, err := os.ReadFile(c.configPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse YAML
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfigFileParse, err)
	}

	// Expand tildes in configuration paths
	if err := config.expandTildes(); err != nil {
		return Config{}, fmt.Errorf("failed to expand tildes in configuration: %w", err)
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// GetConfigWithFallback loads the configuration, falling back to the default
// when the file is missing or unreadable.
func (c *realManager) GetConfigWithFallback() (Config, error) {
	if config, err := c.GetConfigStrict(); err == nil {
		return config, nil
	}

	return c.DefaultConfig(), nil
}

// SaveConfig saves configuration to the embedded config path.
func (c *realManager) SaveConfig(config Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}

	// Create config directory if it doesn't exist
	configDir := filepath.Dir(c.configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(c.configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	return nil
}

// GetConfigPath returns the embedded config path.
func (c *realManager) GetConfigPath() string {
	return c.configPath
}

// DefaultConfig returns the default configuration.
func (c *realManager) DefaultConfig() Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home directory cannot be determined
		homeDir = "."
	}

	return Config{
		RepositoriesDir: filepath.Join(homeDir, ".arbor", "repos"),
		WorktreesDir:    filepath.Join(homeDir, ".arbor", "worktrees"),
		StatusFile:      filepath.Join(homeDir, ".arbor", "status.yaml"),
	}
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	if c.RepositoriesDir == "" {
		return ErrRepositoriesDirEmpty
	}
	if c.WorktreesDir == "" {
		return ErrWorktreesDirEmpty
	}
	if c.StatusFile == "" {
		return ErrStatusFileEmpty
	}
	if c.CloneTimeoutMinutes < 0 {
		return ErrInvalidCloneTimeout
	}
	return nil
}

// CloneTimeout returns the configured long-operation timeout, defaulting to
// DefaultCloneTimeout when unset.
func (c *Config) CloneTimeout() time.Duration {
	if c.CloneTimeoutMinutes <= 0 {
		return DefaultCloneTimeout
	}
	return time.Duration(c.CloneTimeoutMinutes) * time.Minute
}

// expandTildes expands ~ prefixes in all path fields.
func (c *Config) expandTildes() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to determine home directory: %w", err)
	}

	expand := func(path string) string {
		if !strings.HasPrefix(path, "~") {
			return path
		}
		return filepath.Join(homeDir, strings.TrimPrefix(path, "~"))
	}

	c.RepositoriesDir = expand(c.RepositoriesDir)
	c.WorktreesDir = expand(c.WorktreesDir)
	c.StatusFile = expand(c.StatusFile)
	return nil
}
