package cmd

import (
	logger "github.com/PolarWolf314/git-profile/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	verbose       bool
	debug         bool
	gitConfigPath string
	Logger        logger.Logger

	// RootCmd is the git-profile command. Installed on PATH as git-profile it
	// also runs as `git profile`.
	RootCmd = &cobra.Command{
		Use:   "git-profile",
		Short: "Manage multiple git identities in your git config",
		Long: `git-profile keeps several named identities (name, email, signing key,
SSH key) in your global git config, under user.<profile>.<field>.

Examples:
  # Add a work identity
  git-profile add work --name "Jane Doe" --email jane@corp.example

  # List stored profiles
  git-profile list

  # Show one profile
  git-profile show work`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
				Out:     cmd.ErrOrStderr(),
			}
			Logger.Debugf("Initializing %s with verbose=%t, debug=%t, gitconfig=%q", cmd.Name(), verbose, debug, gitConfigPath)
		},
	}
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
	RootCmd.PersistentFlags().StringVar(&gitConfigPath, "gitconfig", "", "git config file to use instead of the global one")

	RootCmd.AddCommand(addCmd)
	RootCmd.AddCommand(listCmd)
	RootCmd.AddCommand(showCmd)
}

// Execute runs the root command.
func Execute() error {
	return RootCmd.Execute()
}

// ResetGlobalState resets all command global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	gitConfigPath = ""
	Logger = logger.Logger{}
	resetAddState()
	resetShowState()
	resetCobraFlagState()
}

// resetCobraFlagState clears Changed on every flag so required-flag checks
// and defaults behave as on a fresh process.
func resetCobraFlagState() {
	for _, c := range append([]*cobra.Command{RootCmd}, RootCmd.Commands()...) {
		c.SilenceErrors = false
		c.Flags().VisitAll(func(flag *pflag.Flag) {
			flag.Changed = false
		})
		c.PersistentFlags().VisitAll(func(flag *pflag.Flag) {
			flag.Changed = false
		})
	}
}
