package cmd

import (
	"context"

	"github.com/PolarWolf314/git-profile/internal/profiles"
	"github.com/PolarWolf314/git-profile/internal/ui"
	"github.com/PolarWolf314/git-profile/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	addName       string
	addEmail      string
	addSigningKey string
	addSSHKey     string
)

func init() {
	addCmd.Flags().StringVarP(&addName, "name", "n", "", "user.name for this profile")
	addCmd.Flags().StringVarP(&addEmail, "email", "e", "", "user.email for this profile")
	addCmd.Flags().StringVar(&addSigningKey, "signing-key", "", "signing key id for this profile")
	addCmd.Flags().StringVar(&addSSHKey, "ssh-key", "", "path to the SSH key for this profile")
	_ = addCmd.MarkFlagRequired("name")
	_ = addCmd.MarkFlagRequired("email")
}

// resetAddState resets the add command's global state for testing.
func resetAddState() {
	addName = ""
	addEmail = ""
	addSigningKey = ""
	addSSHKey = ""
}

var addCmd = &cobra.Command{
	Use:   "add <profile>",
	Short: "Add or update a profile",
	Long: `Writes a profile into the git config as user.<profile>.name,
user.<profile>.email and, when given, user.<profile>.signingkey and
user.<profile>.sshkey.

Adding an existing profile overwrites the fields you pass. Fields you leave
out keep their stored values. Profile names may contain dots.

Examples:
  # Add a profile
  git-profile add work --name "Jane Doe" --email jane@corp.example

  # Add a profile with a signing key and SSH key
  git-profile add oss --name "Jane" --email jane@oss.example \
    --signing-key 3AA5C34371567BD2 --ssh-key ~/.ssh/id_oss`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting add command")
		Logger.Debugf("Args: profile=%s, name=%s, email=%s, signing-key=%s, ssh-key=%s", args[0], addName, addEmail, addSigningKey, addSSHKey)

		identity := profiles.Identity{
			ID:         args[0],
			Name:       addName,
			Email:      addEmail,
			SigningKey: addSigningKey,
			SSHKey:     addSSHKey,
		}

		spinner, cleanup := startSpinner("Saving profile...", cmd.OutOrStdout())
		defer cleanup()

		result, err := workflows.Add(context.Background(), workflows.AddOptions{
			StoreOptions: storeOptions(),
			Identity:     identity,
		})
		if err != nil {
			Logger.Errorf("Add failed: %v", err)
			return reportError(cmd, err)
		}

		Logger.Infof("Profile %s written to %s", identity.ID, result.StorePath)

		msg := ui.Status(ui.Success, "✓", "Profile "+ui.Highlight.Sprint(identity.ID)+" saved to "+ui.Path.Sprint(result.StorePath))
		if addSigningKey == "" && result.Identity.SigningKey != "" {
			msg += "\n" + ui.Info.Sprint("→") + " Kept existing signing key " + ui.Highlight.Sprint(result.Identity.SigningKey)
		}
		if addSSHKey == "" && result.Identity.SSHKey != "" {
			msg += "\n" + ui.Info.Sprint("→") + " Kept existing SSH key " + ui.Path.Sprint(result.Identity.SSHKey)
		}
		spinner.FinalMSG = msg
		return nil
	},
}
