package main

import (
	"github.com/arbordev/arbor/pkg/arbor"
	"github.com/spf13/cobra"
)

func createCreateCmd() *cobra.Command {
	createCmd := &cobra.Command{
		Use:   "create <url> <branch>",
		Short: "Create a worktree for the specified branch",
		Long: `Create an isolated worktree bound to the specified branch, cloning the main
repository first when needed. A branch that exists on the remote is tracked;
a new branch is forked from the default branch and pushed upstream.

Examples:
  arbor create https://github.com/owner/repo.git feature-branch
  arbor create git@github.com:owner/repo.git hotfix`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg := loadConfig()
			engine := newArbor(cfg)

			repoURL, branch := args[0], args[1]

			repoPath, err := repoPathFor(cfg, repoURL)
			if err != nil {
				return err
			}
			worktreePath, err := worktreePathFor(cfg, repoURL, branch)
			if err != nil {
				return err
			}

			return printResult(engine.CreateWorktree(arbor.CreateWorktreeParams{
				RepoURL:      repoURL,
				RepoPath:     repoPath,
				WorktreePath: worktreePath,
				Branch:       branch,
			}))
		},
	}

	return createCmd
}
