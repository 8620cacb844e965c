package core

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

func TestConfigManager_DefaultSettings(t *testing.T) {
	dir := t.TempDir()
	cm := NewConfigManagerWithDir(afero.NewOsFs(), dir)

	s, err := cm.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if s == nil {
		t.Fatal("Load() returned nil settings")
	}
	if len(s.ExtraUninstallLocations) != 0 {
		t.Errorf("expected 0 extra locations, got %d", len(s.ExtraUninstallLocations))
	}
	if cm.ConfigPath() != filepath.Join(dir, "settings.jsonc") {
		t.Errorf("unexpected config path %q", cm.ConfigPath())
	}
}

func TestConfigManager_LoadJSONC(t *testing.T) {
	fs := afero.NewMemMapFs()
	cm := NewConfigManagerWithDir(fs, "/cfg")

	content := `{
	// scanned on uninstall
	"extraUninstallLocations": ["~/.cursor/skills", "/opt/skills",],
	"launcherName": "gsd",
	"tool": "kimi-nightly",
	"configFlag": "--agent-file",
	"shell": "/bin/bash", // trailing comma below
}
`
	if err := afero.WriteFile(fs, cm.ConfigPath(), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := cm.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(s.ExtraUninstallLocations) != 2 || s.ExtraUninstallLocations[1] != "/opt/skills" {
		t.Errorf("unexpected extra locations %v", s.ExtraUninstallLocations)
	}
	if s.LauncherName != "gsd" {
		t.Errorf("expected launcher name 'gsd', got %q", s.LauncherName)
	}
	if s.Shell != "/bin/bash" {
		t.Errorf("expected shell '/bin/bash', got %q", s.Shell)
	}

	opts := s.LauncherOptions(testPaths(t))
	if opts.Tool != "kimi-nightly" || opts.ConfigPath != "/home/user/.kimi/gsd-agent.yaml" {
		t.Errorf("unexpected launcher options %+v", opts)
	}
}

func TestConfigManager_CorruptSettings(t *testing.T) {
	fs := afero.NewMemMapFs()
	cm := NewConfigManagerWithDir(fs, "/cfg")
	if err := afero.WriteFile(fs, cm.ConfigPath(), []byte(`{"tool": `), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := cm.Load(); err == nil {
		t.Fatal("Load() expected error for corrupt settings")
	}
}

func TestConfigManager_WrongType(t *testing.T) {
	fs := afero.NewMemMapFs()
	cm := NewConfigManagerWithDir(fs, "/cfg")
	if err := afero.WriteFile(fs, cm.ConfigPath(), []byte(`{"launcherName": 3}`), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := cm.Load(); err == nil {
		t.Fatal("Load() expected error for mistyped field")
	}
}
