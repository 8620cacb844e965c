package core

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/optivent/gsd-kimi-cli/internal/core/location"
)

// Paths holds every fixed location the installer writes, derived from an
// explicit home directory and login shell.
type Paths struct {
	Home               string
	KimiDir            string
	ConfigPath         string
	PatchesDir         string
	LauncherPath       string
	LegacyAgentsDir    string
	LegacySystemPrompt string
	ShellProfile       string
	RemovalProfiles    []string
}

// NewPaths derives Paths from home and shell (e.g. the value of $SHELL).
// launcherName defaults to "jim".
func NewPaths(home, shell, launcherName string) (Paths, error) {
	if home == "" {
		return Paths{}, fmt.Errorf("home directory is required")
	}
	if !filepath.IsAbs(home) {
		return Paths{}, fmt.Errorf("home directory %q is not absolute", home)
	}
	if launcherName == "" {
		launcherName = "jim"
	}

	kimi := filepath.Join(home, ".kimi")
	rc := ".bashrc"
	if strings.Contains(filepath.Base(shell), "zsh") {
		rc = ".zshrc"
	}

	return Paths{
		Home:               home,
		KimiDir:            kimi,
		ConfigPath:         filepath.Join(kimi, configTemplateName),
		PatchesDir:         filepath.Join(kimi, "patches"),
		LauncherPath:       filepath.Join(home, ".local", "bin", launcherName),
		LegacyAgentsDir:    filepath.Join(kimi, "agents"),
		LegacySystemPrompt: filepath.Join(kimi, "agents", systemFileName),
		ShellProfile:       filepath.Join(home, rc),
		RemovalProfiles: []string{
			filepath.Join(home, ".zshrc"),
			filepath.Join(home, ".bashrc"),
			filepath.Join(home, ".bash_profile"),
		},
	}, nil
}

// InstallCandidates returns the install-time candidate locations.
func (p Paths) InstallCandidates() location.Set {
	return location.InstallCandidates(p.Home)
}

// UninstallCandidates returns the uninstall-time superset.
func (p Paths) UninstallCandidates(extra []string) location.Set {
	return location.UninstallCandidates(p.Home, extra)
}

// AgentsDir returns the agents container inside a skills location.
func AgentsDir(skillsDir string) string {
	return filepath.Join(skillsDir, agentsContainer)
}
