package workflows

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/git-profile/internal/configs"
	"github.com/PolarWolf314/git-profile/internal/gitconfig"
	"github.com/PolarWolf314/git-profile/internal/profiles"
	"github.com/PolarWolf314/git-profile/internal/utils"
)

// StoreOptions selects which git config file a workflow operates on.
type StoreOptions struct {
	// GitConfig is an explicit path to the git config file, typically from
	// the --gitconfig flag. It wins over the settings file.
	GitConfig string

	// SettingsPath overrides the location of the settings file.
	// If empty, configs.SettingsPath() is used.
	SettingsPath string
}

// openManager resolves the git config path and opens a profile manager on it.
// It returns the resolved path alongside the manager for display.
func openManager(ctx context.Context, opts StoreOptions) (*profiles.Manager, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}

	path, err := resolveStorePath(opts)
	if err != nil {
		return nil, "", err
	}

	manager, err := profiles.Open(path)
	if err != nil {
		return nil, path, fmt.Errorf("opening %s: %w", path, err)
	}
	return manager, path, nil
}

func resolveStorePath(opts StoreOptions) (string, error) {
	settingsPath := opts.SettingsPath
	if settingsPath == "" {
		var err error
		settingsPath, err = configs.SettingsPath()
		if err != nil {
			return "", err
		}
	}

	settings, err := configs.LoadSettings(settingsPath)
	if err != nil {
		return "", fmt.Errorf("loading settings: %w", err)
	}

	// --gitconfig=~/x reaches us unexpanded.
	if path := settings.ResolveGitConfig(opts.GitConfig); path != "" {
		return utils.ExpandHome(path)
	}
	return gitconfig.Locate()
}
