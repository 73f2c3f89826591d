package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/PolarWolf314/git-profile/internal/ui"
	"github.com/PolarWolf314/git-profile/internal/workflows"
	"github.com/spf13/cobra"
)

var showJSON bool

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "output in JSON format")
}

// resetShowState resets the show command's global state for testing.
func resetShowState() {
	showJSON = false
}

var showCmd = &cobra.Command{
	Use:   "show <profile>",
	Short: "Show a stored profile",
	Long: `Displays the fields stored for one profile. When the profile has an SSH
key whose public half is readable, its SHA256 fingerprint is shown too.

Examples:
  git-profile show work
  git-profile show team.infra --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting show command")
		Logger.Debugf("Args: profile=%s, json=%t", args[0], showJSON)

		result, err := workflows.Show(context.Background(), workflows.ShowOptions{
			StoreOptions: storeOptions(),
			Tag:          args[0],
		})
		if err != nil {
			Logger.Errorf("Show failed: %v", err)
			return reportError(cmd, err)
		}

		out := cmd.OutOrStdout()
		if showJSON {
			output, err := json.MarshalIndent(result.Identity, "", "  ")
			if err != nil {
				return Logger.ErrorfAndReturn("Failed to marshal profile to JSON: %v", err)
			}
			fmt.Fprintln(out, string(output))
			return nil
		}

		id := result.Identity
		fmt.Fprintf(out, "Profile %s %s:\n\n", ui.Highlight.Sprint(id.ID), ui.Muted.Sprint(result.StorePath))
		fmt.Fprintf(out, "  %-13s %s\n", "Name:", orNotSet(id.Name))
		fmt.Fprintf(out, "  %-13s %s\n", "Email:", orNotSet(id.Email))
		fmt.Fprintf(out, "  %-13s %s\n", "Signing key:", orNotSet(id.SigningKey))
		fmt.Fprintf(out, "  %-13s %s\n", "SSH key:", orNotSet(id.SSHKey))

		switch {
		case result.SSHFingerprint != "":
			fmt.Fprintf(out, "  %-13s %s\n", "Fingerprint:", result.SSHFingerprint)
		case result.SSHKeyError != nil:
			Logger.Warnf("Could not fingerprint SSH key: %v", result.SSHKeyError)
			fmt.Fprintf(out, "  %-13s %s\n", "Fingerprint:", ui.Muted.Sprint("public key not readable"))
		}
		return nil
	},
}

func orNotSet(value string) string {
	if value == "" {
		return ui.Muted.Sprint("not set")
	}
	return value
}
