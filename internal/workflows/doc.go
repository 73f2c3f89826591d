// Package workflows provides the orchestration behind each git-profile
// command.
//
// A workflow resolves which git config file to use, opens a profile manager
// on it and runs one operation. The cmd package stays a thin layer that
// parses flags, calls a workflow and formats the result.
//
// # Store resolution
//
// The git config file is chosen in this order:
//
//  1. StoreOptions.GitConfig (the --gitconfig flag)
//  2. gitconfig in the settings file (see package configs)
//  3. the global git config: ~/.gitconfig, then $XDG_CONFIG_HOME/git/config
//
// No file is ever created; a missing store is ErrStoreUnavailable.
//
// # Available Workflows
//
//   - Add: writes one profile
//   - List: returns the sorted, distinct profile tags
//   - Show: returns one reconstructed profile and its SSH key fingerprint
//
// Errors are the typed values from internal/errors:
//
//	result, err := workflows.List(ctx, opts)
//	if errors.Is(err, kerrors.ErrStoreUnavailable) {
//	    // tell the user to create ~/.gitconfig
//	}
package workflows
