package core

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/afero"
	"github.com/tailscale/hujson"
)

const (
	configDirName  = "gsd-kimi"
	configFileName = "settings.jsonc"
)

// Settings are optional user overrides. Every field has a usable zero value.
type Settings struct {
	// ExtraUninstallLocations are scanned by uninstall after the built-in
	// candidates. "~" expands to the home directory.
	ExtraUninstallLocations []string `json:"extraUninstallLocations,omitempty"`
	LauncherName            string   `json:"launcherName,omitempty"`
	Tool                    string   `json:"tool,omitempty"`
	ConfigFlag              string   `json:"configFlag,omitempty"`
	// Shell overrides $SHELL when picking the profile to edit.
	Shell string `json:"shell,omitempty"`
}

// ConfigManager reads the user settings file.
type ConfigManager struct {
	fs        afero.Fs
	configDir string
}

// NewConfigManager creates a ConfigManager using $XDG_CONFIG_HOME/gsd-kimi.
func NewConfigManager(fs afero.Fs) *ConfigManager {
	return &ConfigManager{fs: fs, configDir: filepath.Join(xdg.ConfigHome, configDirName)}
}

// NewConfigManagerWithDir creates a ConfigManager using a custom config directory.
// Useful for testing.
func NewConfigManagerWithDir(fs afero.Fs, dir string) *ConfigManager {
	return &ConfigManager{fs: fs, configDir: dir}
}

// ConfigPath returns the full path to the settings file.
func (cm *ConfigManager) ConfigPath() string {
	return filepath.Join(cm.configDir, configFileName)
}

// Load reads the settings. Returns zero settings if the file doesn't exist.
// Comments and trailing commas are allowed.
func (cm *ConfigManager) Load() (*Settings, error) {
	path := cm.ConfigPath()
	data, err := afero.ReadFile(cm.fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("reading settings: %w", err)
	}

	std, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("parsing settings %s: %w", path, err)
	}

	var s Settings
	if err := json.Unmarshal(std, &s); err != nil {
		return nil, fmt.Errorf("parsing settings %s: %w", path, err)
	}
	return &s, nil
}

// LauncherOptions builds launcher options for p from the settings.
func (s *Settings) LauncherOptions(p Paths) LauncherOptions {
	return LauncherOptions{
		ConfigPath: p.ConfigPath,
		PatchesDir: p.PatchesDir,
		Tool:       s.Tool,
		ConfigFlag: s.ConfigFlag,
	}
}
