package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func createListCmd() *cobra.Command {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List tracked repositories and their worktrees",
		Long: `List every repository and worktree recorded in the registry.

Examples:
  arbor list`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg := loadConfig()
			engine := newArbor(cfg)

			repositories, err := engine.ListRepositories()
			if err != nil {
				return fmt.Errorf("failed to list repositories: %w", err)
			}

			if len(repositories) == 0 {
				fmt.Println("No repositories tracked.")
				return nil
			}

			for _, repo := range repositories {
				fmt.Printf("%s (%s)\n", repo.Path, repo.Repository.URL)

				worktrees, err := engine.ListWorktrees(repo.Path)
				if err != nil {
					return fmt.Errorf("failed to list worktrees: %w", err)
				}
				for _, wt := range worktrees {
					fmt.Printf("  %s -> %s\n", wt.Branch, wt.Path)
				}
			}
			return nil
		},
	}

	return listCmd
}
