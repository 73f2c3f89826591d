// Package configs manages git-profile's own settings.
//
// Settings are stored in TOML at <user config dir>/git-profile/config.toml
// (usually ~/.config/git-profile/config.toml):
//
//	# Use a different file than ~/.gitconfig as the profile store.
//	gitconfig = "~/dotfiles/gitconfig"
//
// The file is optional. A leading ~ in paths is expanded to the home
// directory. Unknown keys are rejected.
//
// Profiles themselves are not stored here; they live in the git config file,
// see package profiles.
package configs
