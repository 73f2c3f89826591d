package workflows

import (
	"context"
)

// ListOptions configures the list workflow.
type ListOptions struct {
	StoreOptions
}

// ListResult contains the outcome of a list operation.
type ListResult struct {
	// StorePath is the git config file that was scanned.
	StorePath string

	// Tags holds the distinct profile tags, sorted.
	Tags []string
}

// List returns every profile tag stored in the git config.
//
// Returns ErrStoreUnavailable if no git config can be opened.
// Returns ErrScanFailed or ErrMalformedEntry if the entries cannot be read.
func List(ctx context.Context, opts ListOptions) (*ListResult, error) {
	manager, path, err := openManager(ctx, opts.StoreOptions)
	if err != nil {
		return nil, err
	}

	tags, err := manager.ListIdentities()
	if err != nil {
		return nil, err
	}

	return &ListResult{StorePath: path, Tags: tags}, nil
}
