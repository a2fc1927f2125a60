// Package main provides the command-line interface for arbor.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/arbordev/arbor/pkg/arbor"
	"github.com/arbordev/arbor/pkg/config"
	"github.com/arbordev/arbor/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	quiet      bool
	verbose    bool
	configPath string
)

// defaultConfigPath returns the config file location used when --config is
// not given.
func defaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	return filepath.Join(homeDir, ".arbor", "config.yaml")
}

// resolveConfigPath picks the explicit --config path when set.
func resolveConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return defaultConfigPath()
}

// loadConfig loads the configuration strictly, failing if not found.
func loadConfig() *config.Config {
	path := resolveConfigPath()
	manager := config.NewManager(path)

	cfg, err := manager.GetConfigStrict()
	if err != nil {
		if configPath != "" {
			log.Fatalf("Configuration not found at %s. Run: arbor init -c %s", path, path)
		}
		log.Fatalf("Configuration not found at %s. Run: arbor init", path)
	}

	return &cfg
}

// newArbor builds the engine with the logger matching the verbosity flags.
func newArbor(cfg *config.Config) arbor.Arbor {
	instance, err := arbor.NewArbor(arbor.NewArborParams{Config: cfg})
	if err != nil {
		log.Fatal(err)
	}

	if verbose && !quiet {
		instance.SetLogger(logger.NewDefaultLogger())
	}

	return instance
}

// printResult renders an OperationResult and maps failure to a non-zero exit.
func printResult(result arbor.OperationResult) error {
	if !result.Success {
		return fmt.Errorf("%s", result.Error)
	}
	if !quiet && result.Message != "" {
		fmt.Println(result.Message)
	}
	return nil
}

func main() {
	var rootCmd = &cobra.Command{
		Use:   "arbor",
		Short: "Arbor - Git worktree provisioning engine",
		Long: `Arbor provisions and tears down isolated, branch-scoped worktrees of remote ` +
			`repositories, so that many coding sessions can run concurrently without stepping ` +
			`on each other.`,
	}

	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Specify a custom config file path")

	rootCmd.AddCommand(
		createInitCmd(),
		createCloneCmd(),
		createCreateCmd(),
		createRemoveCmd(),
		createListCmd(),
		createPullCmd(),
		createInspectCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
