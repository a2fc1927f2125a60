package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func createInspectCmd() *cobra.Command {
	inspectCmd := &cobra.Command{
		Use:   "inspect <url>",
		Short: "Classify a repository URL and show provider metadata",
		Long: `Validate a repository URL, detect its hosting provider, and show provider
metadata when the provider API is reachable. Works offline with URL-derived
data only.

Examples:
  arbor inspect https://github.com/owner/repo.git
  arbor inspect git@github.com:owner/repo.git`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg := loadConfig()
			engine := newArbor(cfg)

			info, err := engine.InspectRemote(args[0])
			if err != nil {
				return err
			}

			fmt.Printf("URL:        %s\n", info.URL)
			fmt.Printf("Provider:   %s\n", info.Provider)
			if info.Owner != "" {
				fmt.Printf("Owner:      %s\n", info.Owner)
			}
			fmt.Printf("Repository: %s\n", info.Repository)
			if info.DefaultBranch != "" {
				fmt.Printf("Default:    %s\n", info.DefaultBranch)
			}
			if info.Description != "" {
				fmt.Printf("About:      %s\n", info.Description)
			}
			if info.Private {
				fmt.Println("Visibility: private")
			}
			return nil
		},
	}

	return inspectCmd
}
