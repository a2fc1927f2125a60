package main

import (
	"fmt"
	"os"

	"github.com/arbordev/arbor/pkg/config"
	"github.com/spf13/cobra"
)

func createInitCmd() *cobra.Command {
	var force bool

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize arbor configuration",
		Long: `Write the default arbor configuration file and create the directories it
points at.

Examples:
  arbor init
  arbor init -c /path/to/config.yaml`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			path := resolveConfigPath()
			manager := config.NewManager(path)

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("configuration already exists at %s (use --force to overwrite)", path)
			}

			cfg := manager.DefaultConfig()
			if err := manager.SaveConfig(cfg); err != nil {
				return fmt.Errorf("failed to write configuration: %w", err)
			}

			for _, dir := range []string{cfg.RepositoriesDir, cfg.WorktreesDir} {
				if err := os.MkdirAll(dir, 0755); err != nil {
					return fmt.Errorf("failed to create %s: %w", dir, err)
				}
			}

			if !quiet {
				fmt.Printf("Initialized arbor configuration at %s\n", path)
			}
			return nil
		},
	}

	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing configuration file")

	return initCmd
}
