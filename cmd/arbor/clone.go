package main

import (
	"github.com/arbordev/arbor/pkg/arbor"
	"github.com/spf13/cobra"
)

func createCloneCmd() *cobra.Command {
	var branch string

	cloneCmd := &cobra.Command{
		Use:   "clone <url> [--branch <branch>]",
		Short: "Clone a repository into the repositories directory",
		Long: `Clone a remote repository into the configured repositories directory,
optionally onto a named branch. When the branch does not exist on the remote
it is created from the default branch and pushed upstream.

Examples:
  arbor clone https://github.com/owner/repo.git
  arbor clone git@github.com:owner/repo.git --branch develop`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg := loadConfig()
			engine := newArbor(cfg)

			targetPath, err := repoPathFor(cfg, args[0])
			if err != nil {
				return err
			}

			return printResult(engine.CloneRepository(arbor.CloneRepositoryParams{
				URL:        args[0],
				TargetPath: targetPath,
				Branch:     branch,
			}))
		},
	}

	cloneCmd.Flags().StringVarP(&branch, "branch", "b", "", "Branch to clone onto")

	return cloneCmd
}
