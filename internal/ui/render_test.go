package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/optivent/gsd-kimi-cli/internal/core"
	"github.com/optivent/gsd-kimi-cli/internal/core/component"
	"github.com/optivent/gsd-kimi-cli/internal/core/location"
)

func TestInstallSummary(t *testing.T) {
	report := &core.InstallReport{
		Location: location.Candidate{Path: "/home/user/.config/agents/skills", Label: "XDG Agents (recommended)"},
		Components: []*core.InstallResult{
			{Kind: component.KindSkill, Installed: 25, Updated: 2},
			{Kind: component.KindAgent, Installed: 11},
			{Kind: component.KindReference, Installed: 4, Flat: true},
			{Kind: component.KindWorkflow, Installed: 3, Flat: true},
		},
		ConfigPath: "/home/user/.kimi/gsd-agent.yaml",
		Profile:    core.ProfileChange{Changed: true},
	}

	out := ansi.Strip(InstallSummary(report))
	for _, want := range []string{
		"Installation Summary",
		"25 new,  2 updated",
		"11 new,  0 updated",
		" 4 knowledge bases",
		" 3 templates",
		"✓ Installed",
		"⚠ Skipped",
		"✓ Updated",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestVerifyReport(t *testing.T) {
	r := core.Report{Checks: []core.Check{
		{Name: "Skills", Status: core.CheckFail, Detail: "only 26 found (expected 27+)"},
		{Name: "Patches", Status: core.CheckWarn, Detail: "not installed"},
		{Name: "Launcher", Status: core.CheckPass, Detail: "/home/user/.local/bin/jim"},
	}}

	out := ansi.Strip(VerifyReport(r))
	for _, want := range []string{
		"✗ Skills: only 26 found (expected 27+)",
		"⚠ Patches: not installed",
		"✓ Launcher: /home/user/.local/bin/jim",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestScanPlan(t *testing.T) {
	if out := ansi.Strip(ScanPlan(nil, nil, DefaultWidth)); !strings.Contains(out, "No GSD files found.") {
		t.Errorf("unexpected empty plan: %q", out)
	}

	groups := []core.ScanGroup{
		{Dir: "/home/user/.kimi/agents", Label: "Legacy Kimi agents", Kind: component.KindAgent, Names: []string{"gsd-old"}, Legacy: true},
	}
	out := ansi.Strip(ScanPlan(groups, []string{"/home/user/.kimi/gsd-agent.yaml"}, DefaultWidth))
	for _, want := range []string{"Legacy Kimi agents: /home/user/.kimi/agents (1) legacy", "  - gsd-old", "  - /home/user/.kimi/gsd-agent.yaml"} {
		if !strings.Contains(out, want) {
			t.Errorf("plan missing %q:\n%s", want, out)
		}
	}
}

func TestUninstallSummary(t *testing.T) {
	r := &core.UninstallReport{
		Result: &core.RemoveResult{
			Removed: []string{"/a", "/b"},
			Errors:  []error{errors.New("remove /c: permission denied")},
		},
	}
	out := ansi.Strip(UninstallSummary(r))
	for _, want := range []string{"2 entries", "✗ 1 failed", "remove /c: permission denied"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestTruncatePath(t *testing.T) {
	tests := []struct {
		path  string
		width int
		want  string
	}{
		{"/home/user", 20, "/home/user"},
		{"/home/user/.config/agents/skills", 10, "/home/use…"},
		{"/home/user", 0, "/home/user"},
	}
	for _, tt := range tests {
		if got := TruncatePath(tt.path, tt.width); got != tt.want {
			t.Errorf("TruncatePath(%q, %d) = %q, want %q", tt.path, tt.width, got, tt.want)
		}
	}
}

func TestRenderMarkdown(t *testing.T) {
	var buf strings.Builder
	out, err := RenderMarkdown(&buf, QuickStartMarkdown("jim"), DefaultWidth)
	if err != nil {
		t.Fatalf("RenderMarkdown() error: %v", err)
	}
	if !strings.Contains(out, "Quick Start") || !strings.Contains(out, "jim --patch") {
		t.Errorf("unexpected output:\n%s", out)
	}
	if IsTerminal(&buf) {
		t.Error("a buffer is not a terminal")
	}
}
