package profiles

import "strings"

const (
	section   = "user"
	separator = "."

	// scanPattern selects every key with at least one segment between the
	// user section and the trailing option.
	scanPattern = section + separator + "*" + separator + "*"
)

// Key builds the git config key holding field f of profile tag.
func Key(tag string, f Field) string {
	return section + separator + tag + separator + f.String()
}

// SplitKey is the inverse of Key. The tag is everything between the leading
// "user" segment and the trailing field, so tags containing dots survive.
// Keys outside the user section, with fewer than three segments, with an
// empty tag or with an unrecognised trailing segment report false.
func SplitKey(key string) (tag string, f Field, ok bool) {
	parts := strings.Split(key, separator)
	if len(parts) < 3 || parts[0] != section {
		return "", 0, false
	}

	f, ok = ParseField(parts[len(parts)-1])
	if !ok {
		return "", 0, false
	}

	// A [user ""] section yields user..name, which names no profile.
	tag = strings.Join(parts[1:len(parts)-1], separator)
	if tag == "" {
		return "", 0, false
	}
	return tag, f, true
}
