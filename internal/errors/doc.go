// Package errors provides typed error values for git-profile.
//
// Callers match conditions with errors.Is() rather than string matching.
//
// # Error Categories
//
//   - Store errors: the global git config cannot be opened, scanned or written
//     (ErrStoreUnavailable, ErrScanFailed, ErrWriteFailed, ErrMalformedEntry,
//     ErrInvalidKey)
//   - Profile errors: the requested profile does not exist (ErrProfileNotFound)
//
// # Usage
//
// Wrap errors with context at each layer:
//
//	return fmt.Errorf("%w: setting %s: %w", errors.ErrWriteFailed, key, err)
//
// Handle them in the CLI layer:
//
//	if errors.Is(err, kerrors.ErrStoreUnavailable) {
//	    // suggest creating ~/.gitconfig
//	}
package errors
