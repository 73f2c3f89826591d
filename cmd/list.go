package cmd

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/git-profile/internal/workflows"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored profiles",
	Long: `Prints the name of every profile stored in the git config, one per line,
sorted alphabetically. Keys under user.* that are not profile fields are
ignored.

Examples:
  git-profile list
  git-profile list --gitconfig ~/dotfiles/gitconfig`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting list command")

		result, err := workflows.List(context.Background(), workflows.ListOptions{
			StoreOptions: storeOptions(),
		})
		if err != nil {
			Logger.Errorf("List failed: %v", err)
			return reportError(cmd, err)
		}

		Logger.Infof("Found %d profiles in %s", len(result.Tags), result.StorePath)

		out := cmd.OutOrStdout()
		for _, tag := range result.Tags {
			fmt.Fprintln(out, tag)
		}
		return nil
	},
}
