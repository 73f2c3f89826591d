package profiles

import (
	"fmt"
	"sort"
	"unicode/utf8"

	kerrors "github.com/PolarWolf314/git-profile/internal/errors"
	"github.com/PolarWolf314/git-profile/internal/gitconfig"
)

// Identity is one git identity profile. SigningKey and SSHKey are optional;
// the empty string means "not set".
type Identity struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	SigningKey string `json:"signingkey,omitempty"`
	SSHKey     string `json:"sshkey,omitempty"`
}

// Get returns the value of field f and whether it is set. Name and email are
// always reported as set.
func (i Identity) Get(f Field) (string, bool) {
	switch f {
	case FieldName:
		return i.Name, true
	case FieldEmail:
		return i.Email, true
	case FieldSigningKey:
		return i.SigningKey, i.SigningKey != ""
	case FieldSSHKey:
		return i.SSHKey, i.SSHKey != ""
	}
	return "", false
}

func (i *Identity) set(f Field, value string) {
	switch f {
	case FieldName:
		i.Name = value
	case FieldEmail:
		i.Email = value
	case FieldSigningKey:
		i.SigningKey = value
	case FieldSSHKey:
		i.SSHKey = value
	}
}

// Profiles maps a profile tag to the identity reconstructed from its keys.
type Profiles map[string]Identity

// Tags returns the profile tags in lexicographic order.
func (p Profiles) Tags() []string {
	tags := make([]string, 0, len(p))
	for tag := range p {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Encode projects an identity into the entries Add writes. Optional fields
// that are not set produce no entry.
func Encode(id Identity) []gitconfig.Entry {
	var entries []gitconfig.Entry
	for _, f := range Fields() {
		value, ok := id.Get(f)
		if !ok {
			continue
		}
		entries = append(entries, gitconfig.Entry{Key: Key(id.ID, f), Value: value})
	}
	return entries
}

// Decode groups scanned entries by profile tag. Entries whose key does not
// end in a recognised field are ignored. A key that is not valid UTF-8 fails
// the whole decode with ErrMalformedEntry.
func Decode(entries []gitconfig.Entry) (Profiles, error) {
	profiles := make(Profiles)
	for _, e := range entries {
		if !utf8.ValidString(e.Key) {
			return nil, fmt.Errorf("%w: key %q", kerrors.ErrMalformedEntry, e.Key)
		}

		tag, f, ok := SplitKey(e.Key)
		if !ok {
			continue
		}

		id := profiles[tag]
		id.ID = tag
		id.set(f, e.Value)
		profiles[tag] = id
	}
	return profiles, nil
}
