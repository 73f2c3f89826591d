package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	kerrors "github.com/PolarWolf314/git-profile/internal/errors"
	"github.com/PolarWolf314/git-profile/internal/ui"
	"github.com/PolarWolf314/git-profile/internal/utils"
	"github.com/PolarWolf314/git-profile/internal/workflows"
	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

// startSpinner starts a spinner on stderr unless running verbose, debug or
// without a terminal. Returns the spinner and a cleanup function that should
// be deferred; cleanup prints spinner.FinalMSG to out.
//
// spinner.FinalMSG values do not need trailing newlines.
func startSpinner(message string, out io.Writer) (*spinner.Spinner, func()) {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	active := !verbose && !debug && utils.IsTerminal(os.Stderr)
	if active {
		Logger.Debugf("Starting spinner: %s", message)
		s.Start()
	} else {
		Logger.Infof("%s", message)
	}

	cleanup := func() {
		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Cleared so s.Stop() does not print it to stderr.
			s.FinalMSG = ""
		}

		if active {
			s.Stop()
		}

		if finalMsg != "" {
			fmt.Fprint(out, finalMsg)
		}
	}

	return s, cleanup
}

// storeOptions builds the workflow store options from the persistent flags.
func storeOptions() workflows.StoreOptions {
	return workflows.StoreOptions{GitConfig: gitConfigPath}
}

// reportError prints a failure line and, for known conditions, a hint to the
// command's stderr. cobra's own "Error:" line is suppressed for this run.
func reportError(cmd *cobra.Command, err error) error {
	cmd.SilenceErrors = true
	w := cmd.ErrOrStderr()

	fmt.Fprintln(w, ui.Status(ui.Error, "✗", err.Error()))

	switch {
	case errors.Is(err, kerrors.ErrStoreUnavailable):
		fmt.Fprintln(w, ui.Info.Sprint("→")+" Create "+ui.Path.Sprint("~/.gitconfig")+" or pass "+ui.Code.Sprint("--gitconfig <path>"))
	case errors.Is(err, kerrors.ErrProfileNotFound):
		fmt.Fprintln(w, ui.Info.Sprint("→")+" Run "+ui.Code.Sprint("git-profile list")+" to see stored profiles")
	case errors.Is(err, kerrors.ErrMalformedEntry):
		fmt.Fprintln(w, ui.Info.Sprint("→")+" Check the user.* sections of your git config for invalid text")
	}

	return err
}
