package errors

import "errors"

// Store errors indicate the global git configuration could not be used.
var (
	// ErrStoreUnavailable indicates no global git config could be located or opened.
	ErrStoreUnavailable = errors.New("global git configuration is unavailable")

	// ErrWriteFailed indicates a key could not be set or the store could not be persisted.
	ErrWriteFailed = errors.New("failed to write git configuration")

	// ErrScanFailed indicates the store entries could not be enumerated.
	ErrScanFailed = errors.New("failed to scan git configuration")

	// ErrMalformedEntry indicates a scanned key is not valid text.
	ErrMalformedEntry = errors.New("malformed git configuration entry")

	// ErrInvalidKey indicates a key has no section or no option name.
	ErrInvalidKey = errors.New("invalid git configuration key")
)

// Profile errors indicate issues with a specific identity profile.
var (
	// ErrProfileNotFound indicates no keys exist for the requested profile.
	ErrProfileNotFound = errors.New("profile not found")
)
