package profiles

import (
	"errors"
	"fmt"

	kerrors "github.com/PolarWolf314/git-profile/internal/errors"
	"github.com/PolarWolf314/git-profile/internal/gitconfig"
)

// Store is the configuration store a Manager reads and writes.
// *gitconfig.Store satisfies it.
type Store interface {
	Set(key, value string) error
	Entries(pattern string) ([]gitconfig.Entry, error)
	Flush() error
}

// Manager adds and enumerates identity profiles kept in a Store. It holds no
// cache: every read scans the store again.
type Manager struct {
	store Store
}

// New returns a Manager over store.
func New(store Store) *Manager {
	return &Manager{store: store}
}

// Open opens the git config at path, or the global git config when path is
// empty, and returns a Manager over it.
//
// Returns ErrStoreUnavailable if the file cannot be located, read or parsed.
func Open(path string) (*Manager, error) {
	var (
		store *gitconfig.Store
		err   error
	)
	if path == "" {
		store, err = gitconfig.OpenGlobal()
	} else {
		store, err = gitconfig.Open(path)
	}
	if err != nil {
		return nil, err
	}
	return New(store), nil
}

// Add writes the identity's fields under user.<id>.<field>. Name and email
// are always written; signing key and SSH key only when set. A field left
// out keeps whatever value an earlier Add stored.
//
// Every key is staged before the store is flushed once, so the file sees
// all of the writes or none of them. A failed Set leaves earlier staged
// writes in the in-memory store.
//
// Returns ErrWriteFailed if a key cannot be set or the store cannot be saved.
func (m *Manager) Add(id Identity) error {
	for _, e := range Encode(id) {
		if err := m.store.Set(e.Key, e.Value); err != nil {
			return fmt.Errorf("%w: setting %s: %w", kerrors.ErrWriteFailed, e.Key, err)
		}
	}

	if err := m.store.Flush(); err != nil {
		if errors.Is(err, kerrors.ErrWriteFailed) {
			return fmt.Errorf("saving profile %s: %w", id.ID, err)
		}
		return fmt.Errorf("%w: saving profile %s: %w", kerrors.ErrWriteFailed, id.ID, err)
	}
	return nil
}

// Profiles scans the store and returns every profile found.
func (m *Manager) Profiles() (Profiles, error) {
	entries, err := m.store.Entries(scanPattern)
	if err != nil {
		if errors.Is(err, kerrors.ErrScanFailed) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", kerrors.ErrScanFailed, err)
	}
	return Decode(entries)
}

// ListIdentities returns the distinct profile tags in the store, sorted.
func (m *Manager) ListIdentities() ([]string, error) {
	profiles, err := m.Profiles()
	if err != nil {
		return nil, err
	}
	return profiles.Tags(), nil
}

// Lookup returns the profile stored under tag.
//
// Returns ErrProfileNotFound if no key carries that tag.
func (m *Manager) Lookup(tag string) (Identity, error) {
	profiles, err := m.Profiles()
	if err != nil {
		return Identity{}, err
	}

	id, ok := profiles[tag]
	if !ok {
		return Identity{}, fmt.Errorf("%w: %s", kerrors.ErrProfileNotFound, tag)
	}
	return id, nil
}
