package workflows

import (
	"context"

	"github.com/PolarWolf314/git-profile/internal/profiles"
)

// AddOptions configures the add workflow.
type AddOptions struct {
	StoreOptions

	// Identity is the profile to write. Name and email are always written;
	// empty optional fields leave any stored value untouched.
	Identity profiles.Identity
}

// AddResult contains the outcome of an add operation.
type AddResult struct {
	// StorePath is the git config file that was written.
	StorePath string

	// Identity is the profile as it reads back from the store after the
	// write, including optional fields kept from earlier adds.
	Identity profiles.Identity
}

// Add writes a profile into the git config.
//
// Returns ErrStoreUnavailable if no git config can be opened.
// Returns ErrWriteFailed if a key cannot be set or the file cannot be saved.
func Add(ctx context.Context, opts AddOptions) (*AddResult, error) {
	manager, path, err := openManager(ctx, opts.StoreOptions)
	if err != nil {
		return nil, err
	}

	if err := manager.Add(opts.Identity); err != nil {
		return nil, err
	}

	stored, err := manager.Lookup(opts.Identity.ID)
	if err != nil {
		return nil, err
	}

	return &AddResult{StorePath: path, Identity: stored}, nil
}
