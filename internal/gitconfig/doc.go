// Package gitconfig is a small key/value view over a single git config file.
//
// Keys use git's dotted form. The first segment is the section, the last is
// the option name and anything in between is the subsection, which may itself
// contain dots:
//
//	user.email             -> [user]               email = ...
//	user.work.email        -> [user "work"]        email = ...
//	user.team.infra.email  -> [user "team.infra"]  email = ...
//
// Section and option names are matched case-insensitively and reported in
// lower case, so [User] Name = x reads back as user.name. Subsection names
// are case-sensitive.
//
// A Store is loaded once, mutated in memory with Set and persisted with
// Flush, which atomically replaces the file. Parsing uses go-git's config
// format package. Flush does not re-encode the document: it edits the lines of
// the options that were set and leaves the rest of the file, comments and bare
// boolean keys included, as it found them.
package gitconfig
