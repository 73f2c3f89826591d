package workflows

import (
	"context"

	"github.com/PolarWolf314/git-profile/internal/profiles"
	"github.com/PolarWolf314/git-profile/internal/utils"
)

// ShowOptions configures the show workflow.
type ShowOptions struct {
	StoreOptions

	// Tag is the profile to show.
	Tag string
}

// ShowResult contains the outcome of a show operation.
type ShowResult struct {
	// StorePath is the git config file that was read.
	StorePath string

	// Identity is the reconstructed profile.
	Identity profiles.Identity

	// SSHFingerprint is the SHA256 fingerprint of the profile's SSH key,
	// empty when no key is set or it could not be read.
	SSHFingerprint string

	// SSHKeyError explains why a configured SSH key has no fingerprint.
	SSHKeyError error
}

// Show reconstructs a single profile from the git config.
//
// Returns ErrProfileNotFound if no key carries the tag.
func Show(ctx context.Context, opts ShowOptions) (*ShowResult, error) {
	manager, path, err := openManager(ctx, opts.StoreOptions)
	if err != nil {
		return nil, err
	}

	identity, err := manager.Lookup(opts.Tag)
	if err != nil {
		return nil, err
	}

	result := &ShowResult{StorePath: path, Identity: identity}
	if identity.SSHKey == "" {
		return result, nil
	}

	// A quoted --ssh-key "~/.ssh/id" is stored unexpanded.
	keyPath, err := utils.ExpandHome(identity.SSHKey)
	if err != nil {
		result.SSHKeyError = err
		return result, nil
	}
	result.SSHFingerprint, result.SSHKeyError = profiles.Fingerprint(keyPath)
	return result, nil
}
