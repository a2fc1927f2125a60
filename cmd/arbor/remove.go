package main

import (
	"fmt"

	"github.com/arbordev/arbor/pkg/arbor"
	"github.com/arbordev/arbor/pkg/config"
	"github.com/arbordev/arbor/pkg/prompt"
	"github.com/spf13/cobra"
)

func createRemoveCmd() *cobra.Command {
	var removeURL string
	var force bool
	var keepBranch bool

	removeCmd := &cobra.Command{
		Use:   "remove [branch] [--url <url>] [--force] [--keep-branch]",
		Short: "Remove a worktree",
		Long: `Remove a worktree and, unless --keep-branch is given, its local branch.
Without arguments an interactive selector lists every tracked worktree.

Examples:
  arbor remove
  arbor remove feature-branch
  arbor remove feature-branch --url https://github.com/owner/repo.git
  arbor remove feature-branch --force --keep-branch`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg := loadConfig()
			engine := newArbor(cfg)

			branch := ""
			if len(args) == 1 {
				branch = args[0]
			}

			choice, err := resolveRemovalTarget(engine, cfg, branch, removeURL)
			if err != nil {
				return err
			}

			if !force {
				confirmed, err := prompt.NewPrompt().Confirm(
					fmt.Sprintf("Remove worktree %s (branch %s)?", choice.Path, choice.Branch), false)
				if err != nil {
					return err
				}
				if !confirmed {
					return nil
				}
			}

			deleteBranch := choice.Branch
			if keepBranch {
				deleteBranch = ""
			}

			return printResult(engine.RemoveWorktree(arbor.RemoveWorktreeParams{
				RepoPath:     choice.Repository,
				WorktreePath: choice.Path,
				Branch:       deleteBranch,
			}))
		},
	}

	removeCmd.Flags().StringVar(&removeURL, "url", "", "Repository URL the branch belongs to")
	removeCmd.Flags().BoolVar(&force, "force", false, "Skip the confirmation prompt")
	removeCmd.Flags().BoolVar(&keepBranch, "keep-branch", false, "Keep the local branch after removal")

	return removeCmd
}

// resolveRemovalTarget locates the worktree to remove: directly when branch
// and URL pin it down, by registry search when only the branch is given, and
// interactively when nothing is.
func resolveRemovalTarget(engine arbor.Arbor, cfg *config.Config, branch, repoURL string) (prompt.WorktreeChoice, error) {
	if branch != "" && repoURL != "" {
		repoPath, err := repoPathFor(cfg, repoURL)
		if err != nil {
			return prompt.WorktreeChoice{}, err
		}
		return findWorktree(engine, repoPath, branch)
	}

	choices, err := allWorktreeChoices(engine)
	if err != nil {
		return prompt.WorktreeChoice{}, err
	}

	if branch != "" {
		return matchBranch(choices, branch)
	}

	return prompt.NewPrompt().SelectWorktree(choices)
}

func findWorktree(engine arbor.Arbor, repoPath, branch string) (prompt.WorktreeChoice, error) {
	worktrees, err := engine.ListWorktrees(repoPath)
	if err != nil {
		return prompt.WorktreeChoice{}, err
	}
	for _, wt := range worktrees {
		if wt.Branch == branch {
			return prompt.WorktreeChoice{Repository: repoPath, Branch: wt.Branch, Path: wt.Path}, nil
		}
	}
	return prompt.WorktreeChoice{}, fmt.Errorf("no tracked worktree for branch %s under %s", branch, repoPath)
}

// allWorktreeChoices flattens the registry into selectable entries.
func allWorktreeChoices(engine arbor.Arbor) ([]prompt.WorktreeChoice, error) {
	repositories, err := engine.ListRepositories()
	if err != nil {
		return nil, err
	}

	var choices []prompt.WorktreeChoice
	for _, repo := range repositories {
		worktrees, err := engine.ListWorktrees(repo.Path)
		if err != nil {
			return nil, err
		}
		for _, wt := range worktrees {
			choices = append(choices, prompt.WorktreeChoice{
				Repository: repo.Path,
				Branch:     wt.Branch,
				Path:       wt.Path,
			})
		}
	}
	return choices, nil
}

func matchBranch(choices []prompt.WorktreeChoice, branch string) (prompt.WorktreeChoice, error) {
	var matches []prompt.WorktreeChoice
	for _, choice := range choices {
		if choice.Branch == branch {
			matches = append(matches, choice)
		}
	}

	switch len(matches) {
	case 0:
		return prompt.WorktreeChoice{}, fmt.Errorf("no tracked worktree for branch %s", branch)
	case 1:
		return matches[0], nil
	default:
		return prompt.WorktreeChoice{}, fmt.Errorf(
			"branch %s exists in %d repositories, disambiguate with --url", branch, len(matches))
	}
}
