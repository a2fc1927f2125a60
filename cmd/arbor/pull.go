package main

import (
	"github.com/spf13/cobra"
)

func createPullCmd() *cobra.Command {
	var pullURL string

	pullCmd := &cobra.Command{
		Use:   "pull <branch> [--url <url>]",
		Short: "Fast-forward a worktree to the latest remote state",
		Long: `Fast-forward the worktree bound to the specified branch.

Examples:
  arbor pull feature-branch
  arbor pull feature-branch --url https://github.com/owner/repo.git`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg := loadConfig()
			engine := newArbor(cfg)

			choice, err := resolveRemovalTarget(engine, cfg, args[0], pullURL)
			if err != nil {
				return err
			}

			return printResult(engine.PullWorktree(choice.Path))
		},
	}

	pullCmd.Flags().StringVar(&pullURL, "url", "", "Repository URL the branch belongs to")

	return pullCmd
}
