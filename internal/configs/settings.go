package configs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/PolarWolf314/git-profile/internal/utils"
)

// Settings is the tool's own configuration, read from
// <user config dir>/git-profile/config.toml.
type Settings struct {
	// GitConfig overrides the location of the global git config file.
	GitConfig string `toml:"gitconfig"`
}

// SettingsPath returns the default settings file location.
func SettingsPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("error getting config directory: %w", err)
	}
	return filepath.Join(configDir, "git-profile", "config.toml"), nil
}

// LoadSettings reads settings from path. A missing file yields zero settings.
func LoadSettings(path string) (*Settings, error) {
	settings := &Settings{}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return settings, nil
	}

	if err := LoadTOML(path, settings); err != nil {
		return nil, fmt.Errorf("failed to load settings from %s: %w", path, err)
	}

	expanded, err := utils.ExpandHome(settings.GitConfig)
	if err != nil {
		return nil, err
	}
	settings.GitConfig = expanded

	return settings, nil
}

// ResolveGitConfig picks the git config path to use. An explicit override
// wins over the settings file. An empty result means "locate the global file".
func (s *Settings) ResolveGitConfig(override string) string {
	if override != "" {
		return override
	}
	if s == nil {
		return ""
	}
	return s.GitConfig
}
