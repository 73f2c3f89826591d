// Package profiles stores several git identities in one git config file.
//
// Each profile's fields live under a synthetic key:
//
//	user.<tag>.name
//	user.<tag>.email
//	user.<tag>.signingkey   (optional)
//	user.<tag>.sshkey       (optional)
//
// The tag is opaque and may contain dots. When reading back, the tag is
// everything between the leading "user" segment and the trailing field, so
// user.team.infra.email belongs to profile "team.infra". Keys under user.*
// whose last segment is not one of the four fields are ignored.
//
// Key and SplitKey are the only places that know this layout. Encode and
// Decode translate between Identity values and store entries, and Manager
// ties them to a Store.
//
// # Writes
//
// Add never clears a field: omitting the signing key on a later Add keeps the
// previously stored one. All keys of one Add are flushed to disk together.
//
// # Ordering
//
// ListIdentities returns tags sorted lexicographically.
package profiles
